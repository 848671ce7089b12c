package imagepkg

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// DefaultQuality is the lossy WebP quality on a 0-100 scale.
const DefaultQuality float32 = 95

type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatWebP:
		return FormatWebP, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// FileName is the download name for the format.
func (f Format) FileName() string { return "image." + string(f) }

func (f Format) ContentType() string { return "image/" + string(f) }

// Export encodes img in format f.
func Export(w io.Writer, img image.Image, f Format, quality float32) error {
	switch f {
	case FormatPNG:
		return EncodePNG(w, img)
	default:
		return EncodeWebP(w, img, quality)
	}
}

// EncodeWebP writes img as lossy WebP.
func EncodeWebP(w io.Writer, img image.Image, quality float32) error {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	if err := webp.Encode(w, img, opts); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
