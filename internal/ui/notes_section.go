package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NotesSection is a titled grid of note cards
type NotesSection struct {
	header    *widget.Label
	emptyText *widget.Label
	grid      *fyne.Container
	container *fyne.Container
	cards     []*NoteCard
}

// NewNotesSection creates a section; emptyText is shown when it has no cards,
// an empty string hides the placeholder entirely
func NewNotesSection(title, emptyText string) *NotesSection {
	ns := &NotesSection{}
	ns.createUI()
	ns.SetTexts(title, emptyText)
	return ns
}

// createUI creates the user interface for the section
func (ns *NotesSection) createUI() {
	ns.header = widget.NewLabel("")
	ns.header.TextStyle = fyne.TextStyle{Bold: true}

	ns.emptyText = widget.NewLabel("")
	ns.emptyText.Importance = widget.LowImportance
	ns.emptyText.Hide()

	ns.grid = container.NewGridWrap(fyne.NewSize(NoteCardWidth, NoteCardHeight))

	ns.container = container.NewVBox(ns.header, ns.emptyText, ns.grid)
}

// Container returns the section container
func (ns *NotesSection) Container() *fyne.Container {
	return ns.container
}

// SetTexts updates the localized header and placeholder
func (ns *NotesSection) SetTexts(title, emptyText string) {
	ns.header.SetText(title)
	ns.emptyText.SetText(emptyText)
	ns.updateEmpty()
}

// SetCards replaces the cards, keeping the given order
func (ns *NotesSection) SetCards(cards []*NoteCard) {
	ns.cards = cards
	objects := make([]fyne.CanvasObject, len(cards))
	for i, card := range cards {
		objects[i] = card
	}
	ns.grid.Objects = objects
	ns.grid.Refresh()
	ns.updateEmpty()
}

// Cards returns the cards in display order
func (ns *NotesSection) Cards() []*NoteCard {
	return ns.cards
}

// Len returns the number of cards shown
func (ns *NotesSection) Len() int {
	return len(ns.cards)
}

// Show makes the section visible
func (ns *NotesSection) Show() {
	ns.container.Show()
}

// Hide hides the section
func (ns *NotesSection) Hide() {
	ns.container.Hide()
}

// Visible reports whether the section is shown
func (ns *NotesSection) Visible() bool {
	return ns.container.Visible()
}

func (ns *NotesSection) updateEmpty() {
	if len(ns.cards) == 0 && ns.emptyText.Text != "" {
		ns.emptyText.Show()
		return
	}
	ns.emptyText.Hide()
}
