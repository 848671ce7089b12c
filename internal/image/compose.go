package imagepkg

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/imagegen/internal/logos"
	"github.com/youruser/imagegen/internal/textlayout"
)

const (
	Width  = 1920
	Height = 1080

	logoOnlySize = 300
	withTextSize = 200
	logoPadding  = 40

	textMargin  = 40
	textAlpha   = 0.85
	lineSpacing = 1.2
)

// Background is the fill under everything else (#1f2937).
var Background = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}

// LogoSizes lists every size the compositor asks a LogoSource for.
func LogoSizes() []int {
	return []int{logoOnlySize, withTextSize}
}

// LogoSource hands out logo bitmaps. logos.ErrNotReady means the logo is
// skipped for this render.
type LogoSource interface {
	Logo(name logos.Name, size int) (image.Image, error)
}

// Compositor draws a RenderRequest onto a Canvas.
type Compositor struct {
	logos LogoSource
	fonts *textlayout.FontManager
}

func NewCompositor(src LogoSource, fonts *textlayout.FontManager) *Compositor {
	return &Compositor{logos: src, fonts: fonts}
}

// Compose renders req onto a new Width×Height canvas.
func (c *Compositor) Compose(req RenderRequest) (*Canvas, error) {
	canvas := NewCanvas(Width, Height)
	if err := c.Render(canvas, req); err != nil {
		return nil, err
	}
	return canvas, nil
}

// Render overwrites canvas with background, photo, logo and text, in that
// order. Output depends only on req.
func (c *Compositor) Render(canvas *Canvas, req RenderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	canvas.SetGlobalAlpha(1)
	canvas.Clear(Background)

	if req.Photo != nil {
		drawPhoto(canvas, req.Photo)
	}

	if err := c.drawLogo(canvas, req); err != nil {
		return err
	}

	if req.Style == StyleWithText {
		return c.drawText(canvas, req)
	}
	return nil
}

// drawPhoto draws the cover-fitted photo into an offscreen copy of the
// canvas, grays the copy and puts it back. Only the part of the photo that
// lands on the canvas is resampled.
func drawPhoto(canvas *Canvas, photo image.Image) {
	dst := canvas.Image()
	sb := photo.Bounds()
	sr, dr := coverCrop(dst.Bounds(), sb)
	if sr.Empty() {
		return
	}
	src := photo
	if sr != sb {
		src = imaging.Crop(photo, sr)
	}

	off := image.NewRGBA(dst.Bounds())
	copy(off.Pix, dst.Pix)
	// dr can overhang the canvas by part of a source pixel; draw clips it.
	drawScaled(off, src, dr, 1)
	Grayscale(off)
	draw.Draw(dst, dst.Bounds(), off, image.Point{}, draw.Src)
}

// LogoRect is where the logo lands for style on a w×h canvas.
func LogoRect(style Style, w, h int) image.Rectangle {
	if style == StyleWithText {
		x := w - withTextSize - logoPadding
		y := h - withTextSize - logoPadding
		return image.Rect(x, y, x+withTextSize, y+withTextSize)
	}
	x := (w - logoOnlySize) / 2
	y := (h - logoOnlySize) / 2
	return image.Rect(x, y, x+logoOnlySize, y+logoOnlySize)
}

func (c *Compositor) drawLogo(canvas *Canvas, req RenderRequest) error {
	if c.logos == nil {
		return nil
	}
	r := LogoRect(req.Style, canvas.Width(), canvas.Height())
	img, err := c.logos.Logo(req.Logo, r.Dx())
	if errors.Is(err, logos.ErrNotReady) {
		return nil
	}
	if err != nil {
		return err
	}
	canvas.DrawImage(img, r)
	return nil
}

func (c *Compositor) drawText(canvas *Canvas, req RenderRequest) error {
	text := strings.ToUpper(req.Text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	face, err := c.fonts.Face(float64(req.FontSize))
	if err != nil {
		return err
	}

	canvas.SetFontFace(face)
	canvas.SetFillColor(req.TextColor.NRGBA())
	canvas.SetGlobalAlpha(textAlpha)
	defer canvas.SetGlobalAlpha(1)

	maxWidth := float64(canvas.Width() - 2*textMargin)
	step := float64(req.FontSize) * lineSpacing
	for i, line := range textlayout.Wrap(text, maxWidth, canvas) {
		canvas.FillText(line, textMargin, textMargin+float64(i)*step)
	}
	return nil
}
