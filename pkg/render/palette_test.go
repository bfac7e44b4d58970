package render

import (
	"testing"

	"github.com/matzehuels/chromatic/pkg/errors"
)

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		color int
		want  string
	}{
		{0, "#FF0000"},
		{1, "#0000FF"},
		{9, "#008000"},
		{10, "#008000"},
		{-1, "#008000"},
		{1000, "#008000"},
	}

	for _, tt := range tests {
		if got := p.Color(tt.color); got != tt.want {
			t.Errorf("Color(%d) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestEmptyPaletteUsesDefault(t *testing.T) {
	var p Palette
	if got := p.Color(1); got != "#0000FF" {
		t.Errorf("Color(1) on empty palette = %q", got)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#abc", " #112233 "})
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if p.String() != "#AABBCC,#112233" {
		t.Errorf("ParsePalette = %s", p)
	}

	p, err = ParsePalette(nil)
	if err != nil || len(p) != len(DefaultPalette()) {
		t.Errorf("ParsePalette(nil) = %v, %v", p, err)
	}

	_, err = ParsePalette([]string{"#FF0000", "red"})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("ParsePalette(red) error = %v, want INVALID_CONFIG", err)
	}
}

func TestTextColor(t *testing.T) {
	p := DefaultPalette()
	if got := p.TextColor(3); got != "#000000" {
		t.Errorf("TextColor(yellow) = %s, want black", got)
	}
	if got := p.TextColor(1); got != "#FFFFFF" {
		t.Errorf("TextColor(blue) = %s, want white", got)
	}
}

func TestFrameProject(t *testing.T) {
	f := NewFrame(800, 600)

	tests := []struct {
		x, y   float64
		px, py float64
	}{
		{0, 0, 15, 15},
		{1, 1, 785, 585},
		{0.5, 0.5, 400, 300},
	}
	for _, tt := range tests {
		px, py := f.Project(tt.x, tt.y)
		if px != tt.px || py != tt.py {
			t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
		}
	}

	if _, py := f.ProjectUp(0, 0); py != 585 {
		t.Errorf("ProjectUp(0, 0).y = %v, want 585", py)
	}
}
