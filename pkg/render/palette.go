package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// Palette maps color indices to "#RRGGBB" strings.
type Palette []string

// DefaultPalette returns red, blue, green, yellow, orange, purple, cyan,
// magenta, gray and dark green.
func DefaultPalette() Palette {
	return Palette{
		"#FF0000",
		"#0000FF",
		"#00CC00",
		"#FFFF00",
		"#FF8000",
		"#800080",
		"#00FFFF",
		"#FF00FF",
		"#808080",
		"#008000",
	}
}

// ParsePalette validates entries and returns them as a Palette. An empty
// list yields the default palette.
func ParsePalette(entries []string) (Palette, error) {
	if len(entries) == 0 {
		return DefaultPalette(), nil
	}
	p := make(Palette, len(entries))
	for i, e := range entries {
		e = strings.TrimSpace(e)
		if err := errors.ValidateHexColor(e); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette entry %d", i)
		}
		if len(e) == 4 {
			e = string([]byte{'#', e[1], e[1], e[2], e[2], e[3], e[3]})
		}
		p[i] = strings.ToUpper(e)
	}
	return p, nil
}

// Color returns the entry for color index c. Negative and out of range
// indices fall back to the last entry.
func (p Palette) Color(c int) string {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	if c < 0 || c >= len(p) {
		return p[len(p)-1]
	}
	return p[c]
}

// TextColor returns "#000000" or "#FFFFFF", whichever reads better on the
// fill for color index c.
func (p Palette) TextColor(c int) string {
	r, g, b := rgb(p.Color(c))
	// ITU-R BT.601 luma
	if 0.299*r+0.587*g+0.114*b > 150 {
		return "#000000"
	}
	return "#FFFFFF"
}

func rgb(hex string) (r, g, b float64) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return float64(v >> 16 & 0xFF), float64(v >> 8 & 0xFF), float64(v & 0xFF)
}

// String lists the entries, comma separated.
func (p Palette) String() string { return strings.Join(p, ",") }
