package model

import (
	"errors"
	"testing"
)

func TestNoteDraft_Validate(t *testing.T) {
	tests := []struct {
		title   string
		wantErr bool
	}{
		{"Groceries", false},
		{"  padded  ", false},
		{"", true},
		{"   ", true},
		{"\n\t", true},
	}

	for _, test := range tests {
		err := NoteDraft{Title: test.title}.Validate()
		if test.wantErr && !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Validate() with title=%q = %v, expected ErrEmptyTitle", test.title, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("Validate() with title=%q = %v, expected nil", test.title, err)
		}
	}
}

func TestNote_Mutators(t *testing.T) {
	orig := Note{ID: 7, Title: "a", Content: "b", Color: Palette[1]}

	fav := orig.WithFavoriteToggled()
	if !fav.IsFavorite {
		t.Error("Expected favorite flag to be set")
	}
	if orig.IsFavorite {
		t.Error("Original note should not be modified")
	}
	if fav.WithFavoriteToggled().IsFavorite {
		t.Error("Toggling twice should clear the flag")
	}

	colored := orig.WithColor(Palette[3])
	if colored.Color != Palette[3] || orig.Color != Palette[1] {
		t.Errorf("WithColor produced %s (original %s)", colored.Color, orig.Color)
	}

	edited := orig.WithText("new title", "new content")
	if edited.Title != "new title" || edited.Content != "new content" || edited.ID != 7 {
		t.Errorf("WithText produced %+v", edited)
	}
}

func TestNote_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Shopping", "Shopping"},
		{"  Shopping  ", "Shopping"},
		{"", "—"},
		{"line one\nline two", "line one line two"},
	}

	for _, test := range tests {
		result := Note{Title: test.title}.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q = %q, expected %q", test.title, result, test.expected)
		}
	}
}
