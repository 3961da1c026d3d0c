package model

import (
	"reflect"
	"testing"
)

func sampleNotes() []Note {
	return []Note{
		{ID: 1, Title: "Groceries", Content: "milk, eggs", IsFavorite: true},
		{ID: 2, Title: "Meeting", Content: "Discuss ROADMAP"},
		{ID: 3, Title: "Ideas", Content: "garden plans", IsFavorite: true},
		{ID: 4, Title: "Books", Content: "read more"},
	}
}

func ids(notes []Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestMatches(t *testing.T) {
	n := Note{Title: "Weekly Review", Content: "Check the BUDGET"}
	tests := []struct {
		term     string
		expected bool
	}{
		{"", true},
		{"weekly", true},
		{"REVIEW", true},
		{"budget", true},
		{"k the b", true},
		{"monthly", false},
	}

	for _, test := range tests {
		if result := Matches(n, test.term); result != test.expected {
			t.Errorf("Matches(%q) = %v, expected %v", test.term, result, test.expected)
		}
	}
}

func TestFilter(t *testing.T) {
	notes := sampleNotes()
	tests := []struct {
		term     string
		expected []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"roadmap", []int64{2}},
		{"e", []int64{1, 2, 3, 4}},
		{"gar", []int64{3}},
		{"nothing here", []int64{}},
	}

	for _, test := range tests {
		result := ids(Filter(notes, test.term))
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("Filter(%q) = %v, expected %v", test.term, result, test.expected)
		}
	}
}

func TestPartition(t *testing.T) {
	favorites, others := Partition(sampleNotes())

	if got := ids(favorites); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("Expected favorites [1 3], got %v", got)
	}
	if got := ids(others); !reflect.DeepEqual(got, []int64{2, 4}) {
		t.Errorf("Expected others [2 4], got %v", got)
	}

	favorites, others = Partition(nil)
	if len(favorites) != 0 || len(others) != 0 {
		t.Errorf("Expected empty partitions, got %d and %d", len(favorites), len(others))
	}
}

func TestLoadState_IsBusy(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStateIdle, false},
		{LoadStateLoading, true},
		{LoadStateReady, false},
		{LoadStateFailed, false},
	}

	for _, test := range tests {
		if result := test.state.IsBusy(); result != test.expected {
			t.Errorf("LoadState(%s).IsBusy() = %v, expected %v", test.state, result, test.expected)
		}
	}
}
