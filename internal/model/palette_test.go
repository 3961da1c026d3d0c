package model

import (
	"image/color"
	"testing"
)

func TestPalette(t *testing.T) {
	if len(Palette) != 12 {
		t.Fatalf("Expected 12 palette colors, got %d", len(Palette))
	}
	if DefaultColor() != "#E2FFFA" {
		t.Errorf("Expected default color #E2FFFA, got %s", DefaultColor())
	}

	seen := map[string]bool{}
	for _, c := range Palette {
		if seen[c] {
			t.Errorf("Duplicate palette color %s", c)
		}
		seen[c] = true
	}
}

func TestIsPaletteColor(t *testing.T) {
	tests := []struct {
		color    string
		expected bool
	}{
		{"#E2FFFA", true},
		{"#e2fffa", true},
		{"#E0C28B", true},
		{"#000000", false},
		{"", false},
	}

	for _, test := range tests {
		if result := IsPaletteColor(test.color); result != test.expected {
			t.Errorf("IsPaletteColor(%q) = %v, expected %v", test.color, result, test.expected)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		color    string
		expected string
		ok       bool
	}{
		{"#E2FFFA", "#E2FFFA", true},
		{"#e0c28b", "#E0C28B", true},
		{" #ffc0b3 ", "#FFC0B3", true},
		{"#123456", "", false},
	}

	for _, test := range tests {
		result, ok := PaletteColor(test.color)
		if result != test.expected || ok != test.ok {
			t.Errorf("PaletteColor(%q) = %q, %v, expected %q, %v", test.color, result, ok, test.expected, test.ok)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	def := color.NRGBA{R: 0xE2, G: 0xFF, B: 0xFA, A: 0xff}
	tests := []struct {
		input    string
		expected color.NRGBA
	}{
		{"#FFC0B3", color.NRGBA{R: 0xFF, G: 0xC0, B: 0xB3, A: 0xff}},
		{"bcbcbc", color.NRGBA{R: 0xBC, G: 0xBC, B: 0xBC, A: 0xff}},
		{"#FFF", def},
		{"#GGGGGG", def},
		{"", def},
	}

	for _, test := range tests {
		if result := ParseHexColor(test.input); result != test.expected {
			t.Errorf("ParseHexColor(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}
