package pipeline

import (
	"image"
	"image/color"
	"testing"
)

func TestPixmapFill(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Fill(ColorFromRGBA8(50, 127, 150, 200))

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := pm.Pixel(x, y)
			if r != 39 || g != 100 || b != 118 || a != 200 {
				t.Fatalf("pixel (%d, %d) = (%d, %d, %d, %d), want (39, 100, 118, 200)",
					x, y, r, g, b, a)
			}
		}
	}
}

func TestPixmapContexts(t *testing.T) {
	pm := NewPixmap(5, 4)

	px := pm.PixelsCtx()
	if px.Stride != 5 {
		t.Errorf("PixelsCtx stride = %d, want 5", px.Stride)
	}
	// The context must alias the pixmap, not copy it.
	px.Pixels[0] = 77
	if pm.data[0] != 77 {
		t.Error("PixelsCtx does not alias the pixmap buffer")
	}

	g := pm.GatherCtx()
	if g.Width != 5 || g.Height != 4 || g.Stride != 5 {
		t.Errorf("GatherCtx = %dx%d stride %d, want 5x4 stride 5", g.Width, g.Height, g.Stride)
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Fill(ColorFromRGBA8(10, 20, 30, 255))

	img := pm.ToImage()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("ToImage pixel = %+v", got)
	}

	back := FromImage(img)
	if back.Width() != 2 || back.Height() != 2 {
		t.Fatalf("FromImage size = %dx%d, want 2x2", back.Width(), back.Height())
	}
	r, g, b, a := back.Pixel(1, 1)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Fatalf("round trip pixel = (%d, %d, %d, %d), want (10, 20, 30, 255)", r, g, b, a)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 3, 5, 4))
	src.SetRGBA(4, 3, color.RGBA{R: 200, A: 255})

	pm := FromImage(src)
	if pm.Width() != 2 || pm.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", pm.Width(), pm.Height())
	}
	r, _, _, a := pm.Pixel(1, 0)
	if r != 200 || a != 255 {
		t.Fatalf("pixel (1, 0) = (%d, _, _, %d), want (200, 255)", r, a)
	}
}

func TestPixmapRect(t *testing.T) {
	pm := NewPixmap(7, 3)
	if got := pm.Rect(); got != image.Rect(0, 0, 7, 3) {
		t.Fatalf("Rect() = %v", got)
	}
}
