package model

import "strings"

// Matches reports whether the note title or content contains term, ignoring case.
// An empty term matches every note.
func Matches(n Note, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(n.Title), lower) ||
		strings.Contains(strings.ToLower(n.Content), lower)
}

// Filter returns the notes matching term, keeping their order
func Filter(notes []Note, term string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, term) {
			out = append(out, n)
		}
	}
	return out
}

// Partition splits notes into favorites and the rest, keeping order in both
func Partition(notes []Note) (favorites, others []Note) {
	favorites = make([]Note, 0)
	others = make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.IsFavorite {
			favorites = append(favorites, n)
		} else {
			others = append(others, n)
		}
	}
	return favorites, others
}
