package textlayout

import (
	"strings"

	"golang.org/x/image/font"
)

// Measurer reports the rendered width of a string in pixels.
type Measurer interface {
	MeasureText(s string) float64
}

// FaceMeasurer measures with a font face's advances.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) MeasureText(s string) float64 {
	adv := font.MeasureString(m.Face, s)
	return float64(adv) / 64
}

// Wrap greedily packs words into lines no wider than maxWidth. A word that
// alone exceeds maxWidth gets a line of its own and is never split.
func Wrap(text string, maxWidth float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.MeasureText(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}
