package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/youruser/imagegen/internal/logos"
)

type Style string

const (
	StyleLogoOnly Style = "logo-only"
	StyleWithText Style = "with-text"
)

type TextColor string

const (
	TextWhite TextColor = "white"
	TextBlack TextColor = "black"
)

const (
	MinFontSize     = 30
	MaxFontSize     = 150
	DefaultFontSize = 72
)

var (
	ErrInvalidStyle = errors.New("invalid style")
	ErrInvalidColor = errors.New("invalid text color")
	ErrFontSize     = errors.New("font size out of range")
)

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleLogoOnly, StyleWithText:
		return Style(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

func ParseTextColor(s string) (TextColor, error) {
	switch TextColor(s) {
	case TextWhite, TextBlack:
		return TextColor(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func ParseFontSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFontSize, s)
	}
	if n < MinFontSize || n > MaxFontSize {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrFontSize, n, MinFontSize, MaxFontSize)
	}
	return n, nil
}

func (c TextColor) NRGBA() color.NRGBA {
	if c == TextBlack {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// RenderRequest is a snapshot of every control that affects the output.
// Photo is only read.
type RenderRequest struct {
	Photo     image.Image
	Style     Style
	Logo      logos.Name
	Text      string
	TextColor TextColor
	FontSize  int
}

// NewRenderRequest returns the controls' initial values.
func NewRenderRequest() RenderRequest {
	return RenderRequest{
		Style:     StyleLogoOnly,
		Logo:      logos.SPN,
		TextColor: TextWhite,
		FontSize:  DefaultFontSize,
	}
}

// Validate checks the controls the style actually uses. Text color and font
// size only matter for StyleWithText.
func (r RenderRequest) Validate() error {
	if _, err := ParseStyle(string(r.Style)); err != nil {
		return err
	}
	if _, err := logos.ParseName(string(r.Logo)); err != nil {
		return err
	}
	if r.Style != StyleWithText {
		return nil
	}
	if _, err := ParseTextColor(string(r.TextColor)); err != nil {
		return err
	}
	if r.FontSize < MinFontSize || r.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrFontSize, r.FontSize, MinFontSize, MaxFontSize)
	}
	return nil
}
