package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/corenotes/corenotes/internal/logging"
	"github.com/corenotes/corenotes/internal/model"
)

// NoteCard renders one note on its own color with inline editing
type NoteCard struct {
	widget.BaseWidget

	note         model.Note
	localization *Localization
	logger       *slog.Logger
	editing      bool
	busy         bool

	// UI components
	background   *canvas.Rectangle
	titleLabel   *widget.Label
	contentLabel *widget.Label
	titleEntry   *widget.Entry
	contentEntry *widget.Entry
	palette      *PalettePicker

	// Action buttons
	starBtn   *widget.Button
	editBtn   *widget.Button
	saveBtn   *widget.Button
	cancelBtn *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onToggleFavorite func(id int64)
	onColor          func(id int64, color string)
	onSave           func(id int64, title, content string)
	onDelete         func(id int64)
}

// NewNoteCard creates a new note card widget
func NewNoteCard(note model.Note, localization *Localization) *NoteCard {
	nc := &NoteCard{
		note:         note,
		localization: localization,
		logger:       logging.NewModuleLogger("ui", "note_card"),
	}
	nc.ExtendBaseWidget(nc)
	nc.createUI()
	nc.updateFromNote()
	return nc
}

// SetCallbacks sets the action callbacks
func (nc *NoteCard) SetCallbacks(
	onToggleFavorite func(id int64),
	onColor func(id int64, color string),
	onSave func(id int64, title, content string),
	onDelete func(id int64),
) {
	nc.onToggleFavorite = onToggleFavorite
	nc.onColor = onColor
	nc.onSave = onSave
	nc.onDelete = onDelete
}

// Note returns the note currently shown
func (nc *NoteCard) Note() model.Note {
	return nc.note
}

// UpdateNote shows new note data. Pending edits are kept.
func (nc *NoteCard) UpdateNote(note model.Note) {
	nc.note = note
	nc.updateFromNote()
	nc.Refresh()
}

// IsEditing reports whether the inline editor is open
func (nc *NoteCard) IsEditing() bool {
	return nc.editing
}

// SetEditing opens or closes the inline editor.
// Opening copies the current note text into the entries.
func (nc *NoteCard) SetEditing(editing bool) {
	if editing && !nc.editing {
		nc.titleEntry.SetText(nc.note.Title)
		nc.contentEntry.SetText(nc.note.Content)
	}
	nc.editing = editing
	nc.updateMode()
}

// IsBusy reports whether the card waits for a request
func (nc *NoteCard) IsBusy() bool {
	return nc.busy
}

// SetBusy disables the actions that send a request until the current one ends
func (nc *NoteCard) SetBusy(busy bool) {
	if nc.busy == busy {
		return
	}
	nc.busy = busy
	nc.palette.SetDisabled(busy)
	for _, btn := range []*widget.Button{nc.starBtn, nc.saveBtn, nc.deleteBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// RefreshTexts re-reads localized labels
func (nc *NoteCard) RefreshTexts() {
	nc.titleEntry.SetPlaceHolder(nc.localization.GetText(KeyTitlePlaceholder))
	nc.contentEntry.SetPlaceHolder(nc.localization.GetText(KeyContentPlaceholder))
	nc.saveBtn.SetText(nc.localization.GetText(KeySave))
	nc.cancelBtn.SetText(nc.localization.GetText(KeyCancel))
}

// createUI creates the UI components
func (nc *NoteCard) createUI() {
	nc.background = canvas.NewRectangle(model.ParseHexColor(nc.note.Color))
	nc.background.CornerRadius = NoteCardCornerRadius

	nc.titleLabel = widget.NewLabel("")
	nc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	nc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	nc.contentLabel = widget.NewLabel("")
	nc.contentLabel.Wrapping = fyne.TextWrapWord

	nc.titleEntry = widget.NewEntry()
	nc.contentEntry = widget.NewMultiLineEntry()
	nc.contentEntry.Wrapping = fyne.TextWrapWord
	nc.contentEntry.SetMinRowsVisible(ContentEntryRows)

	nc.palette = NewPalettePicker(CardSwatchSize, false, func(color string) {
		current := nc.note
		nc.logger.Debug("color picked", "id", current.ID, "color", color)
		if strings.EqualFold(current.Color, color) || nc.onColor == nil {
			return
		}
		nc.onColor(current.ID, color)
	})

	nc.starBtn = widget.NewButton(IconStarEmpty, func() {
		current := nc.note
		nc.logger.Debug("favorite clicked", "id", current.ID)
		if nc.onToggleFavorite != nil {
			nc.onToggleFavorite(current.ID)
		}
	})
	nc.starBtn.Importance = widget.LowImportance

	nc.editBtn = widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		nc.SetEditing(true)
	})
	nc.editBtn.Importance = widget.LowImportance

	nc.saveBtn = widget.NewButton("", func() {
		current := nc.note
		nc.logger.Debug("save clicked", "id", current.ID)
		if nc.onSave != nil {
			nc.onSave(current.ID, nc.titleEntry.Text, nc.contentEntry.Text)
		}
	})
	nc.saveBtn.Importance = widget.HighImportance

	nc.cancelBtn = widget.NewButton("", func() {
		nc.SetEditing(false)
	})

	nc.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		current := nc.note
		nc.logger.Debug("delete clicked", "id", current.ID)
		if nc.onDelete != nil {
			nc.onDelete(current.ID)
		}
	})
	nc.deleteBtn.Importance = widget.LowImportance

	nc.RefreshTexts()
}

// updateFromNote updates UI components based on note data
func (nc *NoteCard) updateFromNote() {
	nc.background.FillColor = model.ParseHexColor(nc.note.Color)
	nc.background.Refresh()

	nc.titleLabel.SetText(nc.note.GetDisplayTitle())
	nc.contentLabel.SetText(nc.note.Content)

	if nc.note.IsFavorite {
		nc.starBtn.SetText(IconStar)
	} else {
		nc.starBtn.SetText(IconStarEmpty)
	}

	nc.palette.SetSelected(nc.note.Color)
	nc.updateMode()
}

// updateMode toggles between read-only labels and the inline editor
func (nc *NoteCard) updateMode() {
	if nc.editing {
		nc.titleLabel.Hide()
		nc.contentLabel.Hide()
		nc.editBtn.Hide()
		nc.titleEntry.Show()
		nc.contentEntry.Show()
		nc.saveBtn.Show()
		nc.cancelBtn.Show()
		return
	}
	nc.titleEntry.Hide()
	nc.contentEntry.Hide()
	nc.saveBtn.Hide()
	nc.cancelBtn.Hide()
	nc.titleLabel.Show()
	nc.contentLabel.Show()
	nc.editBtn.Show()
}

// CreateRenderer creates the widget renderer
func (nc *NoteCard) CreateRenderer() fyne.WidgetRenderer {
	return &noteCardRenderer{card: nc}
}

// noteCardRenderer renders the note card widget
type noteCardRenderer struct {
	card   *NoteCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *noteCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *noteCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh refreshes the renderer
func (r *noteCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *noteCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *noteCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *noteCardRenderer) createLayout() {
	nc := r.card

	header := container.NewBorder(nil, nil, nil, nc.starBtn, container.NewStack(nc.titleLabel, nc.titleEntry))
	body := container.NewStack(nc.contentLabel, nc.contentEntry)

	// Edit/delete pinned to the right, save/cancel only while editing
	actions := container.NewHBox(nc.saveBtn, nc.cancelBtn, nc.editBtn, nc.deleteBtn)
	footer := container.NewVBox(nc.palette.Container(), container.NewBorder(nil, nil, nil, actions))

	content := container.NewBorder(header, footer, nil, nil, container.NewVScroll(body))

	// Pastel backgrounds need the light variant whatever the app uses
	themed := container.NewThemeOverride(container.NewPadded(content), newPaperTheme(fyne.CurrentApp().Settings().Theme()))

	r.layout = container.NewStack(nc.background, themed)
}
