package pipeline

import "testing"

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageMoveSourceToDestination, "MoveSourceToDestination"},
		{StageSourceOver, "SourceOver"},
		{StageEvenlySpaced2StopGradient, "EvenlySpaced2StopGradient"},
		{StageApplyVectorMask, "ApplyVectorMask"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestStageNamesComplete(t *testing.T) {
	for s := Stage(0); int(s) < stageCount; s++ {
		if s.String() == "" {
			t.Errorf("stage %d has no name", s)
		}
	}
}

func TestHasLowPrecision(t *testing.T) {
	tests := []struct {
		stage Stage
		want  bool
	}{
		{StageSourceOver, true},
		{StageUniformColor, true},
		{StageGradient, true},
		{StageClamp0, false},
		{StageGather, false},
		{StageSoftLight, false},
		{StageBicubic, false},
		{StageXYTo2PtConicalWellBehaved, false},
	}
	for _, tt := range tests {
		if got := tt.stage.HasLowPrecision(); got != tt.want {
			t.Errorf("%v.HasLowPrecision() = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

// Every stage must have a high-precision kernel; the low-precision table may
// be sparse but never points at a stage the high-precision table lacks.
func TestStageTablesCoverage(t *testing.T) {
	for s := Stage(0); int(s) < stageCount; s++ {
		if highpStages[s] == nil {
			t.Errorf("stage %v has no high-precision kernel", s)
		}
		if lowpStages[s] != nil && highpStages[s] == nil {
			t.Errorf("stage %v has a low-precision kernel only", s)
		}
	}
}
