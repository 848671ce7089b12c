package imagepkg

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is a 2D drawing surface with a small amount of state: global
// alpha, fill color and font. Text is drawn left/top aligned.
type Canvas struct {
	img   *image.RGBA
	dc    *gg.Context
	alpha float64
	fill  color.NRGBA
	face  font.Face
}

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img:   img,
		dc:    gg.NewContextForRGBA(img),
		alpha: 1,
		fill:  color.NRGBA{A: 0xff},
	}
}

// Image exposes the backing buffer. Callers must not keep it across renders.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Clear fills every pixel with col, replacing whatever was there.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *Canvas) GlobalAlpha() float64 { return c.alpha }

// SetGlobalAlpha clamps a to [0, 1].
func (c *Canvas) SetGlobalAlpha(a float64) {
	c.alpha = math.Max(0, math.Min(1, a))
}

func (c *Canvas) SetFillColor(col color.NRGBA) { c.fill = col }

func (c *Canvas) SetFontFace(face font.Face) {
	c.face = face
	c.dc.SetFontFace(face)
}

// MeasureText returns the advance width of s with the current face.
func (c *Canvas) MeasureText(s string) float64 {
	if c.face == nil {
		return 0
	}
	w, _ := c.dc.MeasureString(s)
	return w
}

// FillText draws s with its top edge at y.
func (c *Canvas) FillText(s string, x, y float64) {
	if c.face == nil {
		return
	}
	col := c.fill
	col.A = uint8(math.Round(float64(col.A) * c.alpha))
	c.dc.SetColor(col)
	ascent := float64(c.face.Metrics().Ascent) / 64
	c.dc.DrawString(s, x, y+ascent)
}

// DrawImage scales img to r and composites it over the canvas.
func (c *Canvas) DrawImage(img image.Image, r image.Rectangle) {
	drawScaled(c.img, img, r, c.alpha)
}

func drawScaled(dst draw.Image, img image.Image, r image.Rectangle, alpha float64) {
	if r.Empty() {
		return
	}
	src := img
	if b := img.Bounds(); b.Dx() != r.Dx() || b.Dy() != r.Dy() {
		src = imaging.Resize(img, r.Dx(), r.Dy(), imaging.Lanczos)
	}
	sp := src.Bounds().Min
	if alpha >= 1 {
		draw.Draw(dst, r, src, sp, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})
	draw.DrawMask(dst, r, src, sp, mask, image.Point{}, draw.Over)
}
