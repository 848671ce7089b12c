// Package logos rasterizes the fixed set of vector logos once and serves the
// cached bitmaps.
package logos

import (
	"errors"
	"fmt"
	"image/color"
)

type Name string

const (
	SPN         Name = "SPN"
	Flatwater   Name = "Flatwater"
	Documenters Name = "Documenters"
)

// ViewBox is the side of the square coordinate space every definition uses.
const ViewBox = 200

var (
	ErrUnknownLogo = errors.New("unknown logo")
	ErrNotReady    = errors.New("logos not rasterized yet")
)

// Names lists the logos in display order.
func Names() []Name {
	return []Name{SPN, Flatwater, Documenters}
}

func ParseName(s string) (Name, error) {
	for _, n := range Names() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLogo, s)
}

// label is a centered bold caption drawn after the shapes; y is the baseline.
type label struct {
	Text  string
	Y     float64
	Size  float64
	Color color.NRGBA
}

type definition struct {
	SVG   string
	Label label
}

var definitions = map[Name]definition{
	SPN: {
		SVG: `<svg width="200" height="200" viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <circle cx="100" cy="100" r="90" fill="white" stroke="black" stroke-width="4"/>
</svg>`,
		Label: label{Text: "SPN", Y: 120, Size: 60, Color: color.NRGBA{A: 0xff}},
	},
	Flatwater: {
		SVG: `<svg width="200" height="200" viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="white" rx="10"/>
  <path d="M40 100 Q100 60 160 100" stroke="#0066cc" stroke-width="8" fill="none"/>
  <path d="M40 120 Q100 80 160 120" stroke="#0066cc" stroke-width="8" fill="none"/>
</svg>`,
		Label: label{Text: "FLATWATER", Y: 160, Size: 24, Color: color.NRGBA{R: 0x00, G: 0x66, B: 0xcc, A: 0xff}},
	},
	Documenters: {
		SVG: `<svg width="200" height="200" viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="#1a1a1a" rx="10"/>
  <rect x="60" y="40" width="80" height="100" fill="white" rx="4"/>
  <line x1="70" y1="60" x2="130" y2="60" stroke="#1a1a1a" stroke-width="3"/>
  <line x1="70" y1="80" x2="130" y2="80" stroke="#1a1a1a" stroke-width="3"/>
  <line x1="70" y1="100" x2="130" y2="100" stroke="#1a1a1a" stroke-width="3"/>
</svg>`,
		Label: label{Text: "DOCUMENTERS", Y: 170, Size: 18, Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	},
}
