package pipeline

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is a rectangular buffer of premultiplied RGBA8 pixels, the only
// pixel format pipelines load from and store to.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Both dimensions must be positive.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Rect returns the pixmap bounds as a rectangle anchored at the origin.
func (p *Pixmap) Rect() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Data returns the raw pixel data (premultiplied RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Pixel returns the stored bytes of a single pixel.
func (p *Pixmap) Pixel(x, y int) (r, g, b, a uint8) {
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Fill sets every pixel to the premultiplied form of c.
func (p *Pixmap) Fill(c Color) {
	r, g, b, a := c.Premultiply().RGBA8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// PixelsCtx adapts the pixmap for LoadDestination, Store and SourceOverRGBA
// stages. The pipeline writes through the returned context directly into the
// pixmap's buffer.
func (p *Pixmap) PixelsCtx() *PixelsCtx {
	return &PixelsCtx{
		Pixels: p.data,
		Stride: p.width,
	}
}

// GatherCtx adapts the pixmap as a read-only sampling source for Gather,
// Bilinear and Bicubic stages.
func (p *Pixmap) GatherCtx() *GatherCtx {
	return &GatherCtx{
		Pixels: p.data,
		Stride: p.width,
		Width:  p.width,
		Height: p.height,
	}
}

// ToImage converts the pixmap to an image.RGBA. Both use premultiplied
// alpha, so this is a plain copy.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.Rect())
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting to premultiplied
// RGBA8 on the way in.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	dst := &image.RGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   pm.Rect(),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
