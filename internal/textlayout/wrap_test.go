package textlayout

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// monoMeasurer gives every rune the same advance.
type monoMeasurer float64

func (m monoMeasurer) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * float64(m)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"two words per line", "THE QUICK BROWN FOX", 90, []string{"THE QUICK", "BROWN FOX"}},
		{"all on one line", "THE QUICK BROWN FOX", 1000, []string{"THE QUICK BROWN FOX"}},
		{"one word per line", "THE QUICK BROWN FOX", 40, []string{"THE", "QUICK", "BROWN", "FOX"}},
		{"exact fit is kept", "AB CD", 50, []string{"AB CD"}},
		{"over-wide word is not split", "SUPERCALIFRAGILISTIC IS LONG", 60, []string{"SUPERCALIFRAGILISTIC", "IS LONG"}},
		{"single word", "HELLO", 10, []string{"HELLO"}},
		{"extra whitespace collapses", "  A   B\nC  ", 1000, []string{"A B C"}},
		{"empty", "", 100, nil},
		{"blank", "   ", 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, monoMeasurer(10))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrap_FaceMeasurer(t *testing.T) {
	face, err := Bold().Face(72)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	defer face.Close()
	m := FaceMeasurer{Face: face}

	two := m.MeasureText("THE QUICK")
	if two <= 0 {
		t.Fatalf("expected positive width, got %v", two)
	}
	if m.MeasureText("THE QUICK BROWN") <= two {
		t.Fatal("longer string should measure wider")
	}

	// Budget that holds "THE QUICK" and "BROWN FOX" but nothing with three words.
	maxWidth := two
	if w := m.MeasureText("BROWN FOX"); w > maxWidth {
		maxWidth = w
	}
	lines := Wrap("THE QUICK BROWN FOX", maxWidth, m)
	want := []string{"THE QUICK", "BROWN FOX"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("got %q, want %q", lines, want)
	}
}

func TestNewFontManager_Fallback(t *testing.T) {
	fm, err := NewFontManager("/does/not/exist.ttf")
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if fm.Name() != "gobold" {
		t.Errorf("expected gobold fallback, got %s", fm.Name())
	}
}
