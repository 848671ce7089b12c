package logos

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/imagegen/internal/textlayout"
)

// rasterize draws def into a size×size transparent bitmap.
func rasterize(def definition, size int, fonts *textlayout.FontManager) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(def.SVG))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	if def.Label.Text == "" {
		return img, nil
	}

	// oksvg ignores <text>, so captions are set with the bold font.
	scale := float64(size) / ViewBox
	face, err := fonts.Face(def.Label.Size * scale)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	width := font.MeasureString(face, def.Label.Text)
	x := fixed.Int26_6(float64(size)/2*64) - width/2
	y := fixed.Int26_6(def.Label.Y * scale * 64)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(def.Label.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(def.Label.Text)

	return img, nil
}
