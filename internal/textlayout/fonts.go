// Package textlayout loads fonts and breaks text into lines that fit a
// pixel width.
package textlayout

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontManager holds one parsed font and hands out faces at any size.
type FontManager struct {
	parsed *opentype.Font
	name   string
}

// NewFontManager parses the TTF/OTF at path. An empty or unreadable path
// falls back to the embedded Go Bold font.
func NewFontManager(path string) (*FontManager, error) {
	var data []byte
	name := "gobold"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Printf("warning: could not load font %q, using gobold: %v", path, err)
		} else {
			data = b
			name = path
		}
	}
	if data == nil {
		data = gobold.TTF
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &FontManager{parsed: parsed, name: name}, nil
}

// Bold returns a manager for the embedded Go Bold font.
func Bold() *FontManager {
	fm, err := NewFontManager("")
	if err != nil {
		// gobold.TTF is compiled in; a parse failure is a broken build.
		panic(err)
	}
	return fm
}

func (fm *FontManager) Name() string { return fm.name }

// Face returns a new face at size pixels (72 DPI). Faces keep glyph buffers
// and must not be shared between goroutines.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %s@%v: %w", fm.name, size, err)
	}
	return face, nil
}
