package model

import (
	"image/color"
	"strconv"
	"strings"
)

// Palette is the fixed set of note background colors, in picker order
var Palette = []string{
	"#E2FFFA", // light aqua
	"#FEE3E3", // light rose
	"#FFE2C3", // light orange
	"#D1F1FF", // light blue
	"#E5D4FE", // light purple
	"#F2F1B9", // light yellow
	"#FFD1F1", // light pink
	"#FFC0B3", // coral
	"#F4F4F4", // very light gray
	"#EAEAEA", // light gray
	"#BCBCBC", // medium gray
	"#E0C28B", // beige
}

// DefaultColor returns the color preselected in the creation form
func DefaultColor() string {
	return Palette[0]
}

// IsPaletteColor reports whether c is one of the palette colors (case-insensitive)
func IsPaletteColor(c string) bool {
	_, ok := PaletteColor(c)
	return ok
}

// PaletteColor returns the palette entry matching c in any letter case
func PaletteColor(c string) (string, bool) {
	c = strings.TrimSpace(c)
	for _, p := range Palette {
		if strings.EqualFold(p, c) {
			return p, true
		}
	}
	return "", false
}

// ParseHexColor converts "#RRGGBB" into an opaque color.
// Malformed values fall back to the default palette color.
func ParseHexColor(s string) color.NRGBA {
	if c, ok := parseHex(s); ok {
		return c
	}
	c, _ := parseHex(DefaultColor())
	return c
}

func parseHex(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
