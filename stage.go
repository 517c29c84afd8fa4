package pipeline

// Stage identifies one pixel operation in a pipeline.
//
// The set is closed: new stages require new kernels in both precision tables.
// Every stage has a high-precision implementation; only a subset has a
// low-precision one, and the compiler falls back to high precision when a
// pipeline uses a stage outside that subset.
type Stage int

const (
	StageMoveSourceToDestination Stage = iota
	StageMoveDestinationToSource
	StageClamp0
	StageClampA
	StagePremultiply
	StageUniformColor
	StageSeedShader
	StageLoadDestination
	StageStore
	StageGather
	StageScaleU8
	StageLerpU8
	StageScale1Float
	StageLerp1Float
	StageDestinationAtop
	StageDestinationIn
	StageDestinationOut
	StageDestinationOver
	StageSourceAtop
	StageSourceIn
	StageSourceOut
	StageSourceOver
	StageClear
	StageModulate
	StageMultiply
	StagePlus
	StageScreen
	StageXor
	StageColorBurn
	StageColorDodge
	StageDarken
	StageDifference
	StageExclusion
	StageHardLight
	StageLighten
	StageOverlay
	StageSoftLight
	StageHue
	StageSaturation
	StageColor
	StageLuminosity
	StageSourceOverRGBA
	StageTransform
	StageReflectX
	StageReflectY
	StageRepeatX
	StageRepeatY
	StageBilinear
	StageBicubic
	StagePadX1
	StageReflectX1
	StageRepeatX1
	StageGradient
	StageEvenlySpaced2StopGradient
	StageXYToRadius
	StageXYTo2PtConicalFocalOnCircle
	StageXYTo2PtConicalWellBehaved
	StageXYTo2PtConicalGreater
	StageMask2PtConicalDegenerates
	StageApplyVectorMask
)

// stageCount is the number of stage kinds. Both precision tables are indexed
// by Stage and must have exactly this length.
const stageCount = int(StageApplyVectorMask) + 1

var stageNames = [stageCount]string{
	StageMoveSourceToDestination:     "MoveSourceToDestination",
	StageMoveDestinationToSource:     "MoveDestinationToSource",
	StageClamp0:                      "Clamp0",
	StageClampA:                      "ClampA",
	StagePremultiply:                 "Premultiply",
	StageUniformColor:                "UniformColor",
	StageSeedShader:                  "SeedShader",
	StageLoadDestination:             "LoadDestination",
	StageStore:                       "Store",
	StageGather:                      "Gather",
	StageScaleU8:                     "ScaleU8",
	StageLerpU8:                      "LerpU8",
	StageScale1Float:                 "Scale1Float",
	StageLerp1Float:                  "Lerp1Float",
	StageDestinationAtop:             "DestinationAtop",
	StageDestinationIn:               "DestinationIn",
	StageDestinationOut:              "DestinationOut",
	StageDestinationOver:             "DestinationOver",
	StageSourceAtop:                  "SourceAtop",
	StageSourceIn:                    "SourceIn",
	StageSourceOut:                   "SourceOut",
	StageSourceOver:                  "SourceOver",
	StageClear:                       "Clear",
	StageModulate:                    "Modulate",
	StageMultiply:                    "Multiply",
	StagePlus:                        "Plus",
	StageScreen:                      "Screen",
	StageXor:                         "Xor",
	StageColorBurn:                   "ColorBurn",
	StageColorDodge:                  "ColorDodge",
	StageDarken:                      "Darken",
	StageDifference:                  "Difference",
	StageExclusion:                   "Exclusion",
	StageHardLight:                   "HardLight",
	StageLighten:                     "Lighten",
	StageOverlay:                     "Overlay",
	StageSoftLight:                   "SoftLight",
	StageHue:                         "Hue",
	StageSaturation:                  "Saturation",
	StageColor:                       "Color",
	StageLuminosity:                  "Luminosity",
	StageSourceOverRGBA:              "SourceOverRGBA",
	StageTransform:                   "Transform",
	StageReflectX:                    "ReflectX",
	StageReflectY:                    "ReflectY",
	StageRepeatX:                     "RepeatX",
	StageRepeatY:                     "RepeatY",
	StageBilinear:                    "Bilinear",
	StageBicubic:                     "Bicubic",
	StagePadX1:                       "PadX1",
	StageReflectX1:                   "ReflectX1",
	StageRepeatX1:                    "RepeatX1",
	StageGradient:                    "Gradient",
	StageEvenlySpaced2StopGradient:   "EvenlySpaced2StopGradient",
	StageXYToRadius:                  "XYToRadius",
	StageXYTo2PtConicalFocalOnCircle: "XYTo2PtConicalFocalOnCircle",
	StageXYTo2PtConicalWellBehaved:   "XYTo2PtConicalWellBehaved",
	StageXYTo2PtConicalGreater:       "XYTo2PtConicalGreater",
	StageMask2PtConicalDegenerates:   "Mask2PtConicalDegenerates",
	StageApplyVectorMask:             "ApplyVectorMask",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= stageCount {
		return "Unknown"
	}
	return stageNames[s]
}

// HasLowPrecision reports whether the stage has a low-precision kernel.
// Pipelines built only from such stages compile to the low-precision tier.
func (s Stage) HasLowPrecision() bool {
	if s < 0 || int(s) >= stageCount {
		return false
	}
	return lowpStages[s] != nil
}
