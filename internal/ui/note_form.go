package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/corenotes/corenotes/internal/model"
)

// NoteForm is the dismissible creation form under the header
type NoteForm struct {
	localization *Localization

	titleEntry   *widget.Entry
	contentEntry *widget.Entry
	palette      *PalettePicker
	addBtn       *widget.Button
	closeBtn     *widget.Button
	container    *fyne.Container

	onSubmit func(draft model.NoteDraft)
}

// NewNoteForm creates a hidden creation form
func NewNoteForm(localization *Localization, onSubmit func(draft model.NoteDraft)) *NoteForm {
	f := &NoteForm{
		localization: localization,
		onSubmit:     onSubmit,
	}
	f.createUI()
	f.Hide()
	return f
}

func (f *NoteForm) createUI() {
	f.titleEntry = widget.NewEntry()
	f.titleEntry.OnSubmitted = func(string) { f.submit() }

	f.contentEntry = widget.NewMultiLineEntry()
	f.contentEntry.Wrapping = fyne.TextWrapWord
	f.contentEntry.SetMinRowsVisible(ContentEntryRows)

	f.palette = NewPalettePicker(SwatchSize, true, nil)

	f.addBtn = widget.NewButton("", f.submit)
	f.addBtn.Importance = widget.HighImportance

	f.closeBtn = widget.NewButton(IconClose, f.Hide)
	f.closeBtn.Importance = widget.LowImportance

	bottom := container.NewBorder(nil, nil, nil, f.addBtn, f.palette.Container())
	f.container = container.NewVBox(
		container.NewBorder(nil, nil, nil, f.closeBtn, f.titleEntry),
		f.contentEntry,
		bottom,
		widget.NewSeparator(),
	)
	f.RefreshTexts()
}

// Container returns the form layout
func (f *NoteForm) Container() *fyne.Container {
	return f.container
}

// RefreshTexts re-reads localized labels
func (f *NoteForm) RefreshTexts() {
	f.titleEntry.SetPlaceHolder(f.localization.GetText(KeyTitlePlaceholder))
	f.contentEntry.SetPlaceHolder(f.localization.GetText(KeyContentPlaceholder))
	f.addBtn.SetText(f.localization.GetText(KeyAdd))
}

// Draft returns what the user typed
func (f *NoteForm) Draft() model.NoteDraft {
	return model.NoteDraft{
		Title:   f.titleEntry.Text,
		Content: f.contentEntry.Text,
		Color:   f.palette.Selected(),
	}
}

// Reset clears the fields and selects the default color again
func (f *NoteForm) Reset() {
	f.titleEntry.SetText("")
	f.contentEntry.SetText("")
	f.palette.SetSelected(model.DefaultColor())
}

// SetBusy disables the Add button while a request is in flight
func (f *NoteForm) SetBusy(busy bool) {
	if busy {
		f.addBtn.Disable()
		return
	}
	f.addBtn.Enable()
}

// Show opens the form
func (f *NoteForm) Show() {
	f.container.Show()
}

// Hide closes the form, keeping whatever was typed
func (f *NoteForm) Hide() {
	f.container.Hide()
}

// Toggle flips visibility
func (f *NoteForm) Toggle() {
	if f.Visible() {
		f.Hide()
		return
	}
	f.Show()
}

// Visible reports whether the form is open
func (f *NoteForm) Visible() bool {
	return f.container.Visible()
}

func (f *NoteForm) submit() {
	if f.onSubmit != nil && !f.addBtn.Disabled() {
		f.onSubmit(f.Draft())
	}
}
