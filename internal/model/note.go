package model

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned when a note would be created without a title
var ErrEmptyTitle = errors.New("note title is empty")

// Note is a single note as exposed by the notes API
type Note struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Color      string `json:"color"`
	IsFavorite bool   `json:"is_favorite"`
}

// NoteDraft holds the fields sent when creating a note
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

// Validate checks that the draft can be sent to the server
func (d NoteDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// WithFavoriteToggled returns a copy of the note with the favorite flag flipped
func (n Note) WithFavoriteToggled() Note {
	n.IsFavorite = !n.IsFavorite
	return n
}

// WithColor returns a copy of the note with another color
func (n Note) WithColor(color string) Note {
	n.Color = color
	return n
}

// WithText returns a copy of the note with new title and content
func (n Note) WithText(title, content string) Note {
	n.Title = title
	n.Content = content
	return n
}

// GetDisplayTitle returns the title, or a placeholder for untitled notes
func (n Note) GetDisplayTitle() string {
	title := strings.TrimSpace(n.Title)
	if title == "" {
		return "—"
	}
	// Cards show a single line
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	return title
}
