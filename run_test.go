package trellis

import "testing"

func TestGameLayoutPinsLogicalCanvas(t *testing.T) {
	g := &game{scene: NewScene()}

	// The logical canvas size is fixed regardless of the window size.
	for _, size := range [][2]int{{800, 600}, {300, 200}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		if w != CanvasWidth || h != CanvasHeight {
			t.Errorf("Layout(%d, %d) = (%d, %d), want (%d, %d)",
				size[0], size[1], w, h, CanvasWidth, CanvasHeight)
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, A: 1}.WithAlpha(0.5)
	if c.A != 0.5 || c.R != 0.5 || c.G != 0.25 || c.B != 1 {
		t.Errorf("WithAlpha changed channels: %+v", c)
	}
}

func TestColorIsZero(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero value not reported as zero")
	}
	if (Color{A: 1}).IsZero() {
		t.Error("opaque black reported as zero")
	}
}

func TestColorToRGBAClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0.5, A: 1}.toRGBA()
	if c.R != 255 {
		t.Errorf("R = %d, want clamped to 255", c.R)
	}
	if c.G != 0 {
		t.Errorf("G = %d, want clamped to 0", c.G)
	}
	if c.A != 255 {
		t.Errorf("A = %d, want 255", c.A)
	}
}
