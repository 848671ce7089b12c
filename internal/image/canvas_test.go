package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCanvas_GlobalAlpha(t *testing.T) {
	c := NewCanvas(10, 10)
	if c.GlobalAlpha() != 1 {
		t.Fatalf("default alpha %v", c.GlobalAlpha())
	}
	c.SetGlobalAlpha(2)
	if c.GlobalAlpha() != 1 {
		t.Errorf("alpha not clamped high: %v", c.GlobalAlpha())
	}
	c.SetGlobalAlpha(-1)
	if c.GlobalAlpha() != 0 {
		t.Errorf("alpha not clamped low: %v", c.GlobalAlpha())
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.Black)
	src := imaging.New(2, 2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	c.DrawImage(src, image.Rect(0, 0, 4, 4))
	if got := c.Image().RGBAAt(3, 3); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("scaled draw = %v", got)
	}
	if got := c.Image().RGBAAt(4, 4); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("outside rect = %v", got)
	}

	c.SetGlobalAlpha(0.5)
	c.DrawImage(src, image.Rect(6, 6, 8, 8))
	got := c.Image().RGBAAt(6, 6)
	if got.R < 0x7e || got.R > 0x81 || got.A != 0xff {
		t.Errorf("half-alpha draw = %v", got)
	}
}

func TestCanvas_NoFace(t *testing.T) {
	c := NewCanvas(10, 10)
	if w := c.MeasureText("abc"); w != 0 {
		t.Errorf("MeasureText without face = %v", w)
	}
	c.FillText("abc", 0, 0)
}
