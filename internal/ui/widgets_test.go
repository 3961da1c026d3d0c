package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/corenotes/corenotes/internal/model"
)

func TestPalettePicker_SelectOnTap(t *testing.T) {
	test.NewApp()

	var picked []string
	p := NewPalettePicker(SwatchSize, true, func(hex string) { picked = append(picked, hex) })

	assert.Len(t, p.Swatches(), len(model.Palette))
	assert.Equal(t, model.DefaultColor(), p.Selected())
	assert.True(t, p.Swatches()[0].Selected())

	test.Tap(p.Swatches()[4])

	assert.Equal(t, []string{model.Palette[4]}, picked)
	assert.Equal(t, model.Palette[4], p.Selected())
	assert.False(t, p.Swatches()[0].Selected())
	assert.True(t, p.Swatches()[4].Selected())
}

func TestPalettePicker_DeferredSelection(t *testing.T) {
	test.NewApp()

	var picked string
	p := NewPalettePicker(CardSwatchSize, false, func(hex string) { picked = hex })

	test.Tap(p.Swatches()[2])

	assert.Equal(t, model.Palette[2], picked)
	assert.Equal(t, model.DefaultColor(), p.Selected(), "owner confirms the change")

	p.SetSelected("#ffe2c3")
	assert.True(t, p.Swatches()[2].Selected(), "selection is case-insensitive")

	p.SetSelected("#123456")
	for _, s := range p.Swatches() {
		assert.False(t, s.Selected())
	}
}

func TestNoteCard_ShowsNote(t *testing.T) {
	test.NewApp()

	card := NewNoteCard(model.Note{ID: 9, Title: "Line\nbreak", Content: "body", Color: "#D1F1FF", IsFavorite: true}, NewLocalization())

	assert.Equal(t, "Line break", card.titleLabel.Text)
	assert.Equal(t, "body", card.contentLabel.Text)
	assert.Equal(t, IconStar, card.starBtn.Text)
	assert.Equal(t, "#D1F1FF", card.palette.Selected())
	assert.False(t, card.titleEntry.Visible())
	assert.True(t, card.editBtn.Visible())

	card.SetEditing(true)
	assert.True(t, card.titleEntry.Visible())
	assert.False(t, card.titleLabel.Visible())

	// Updates while editing keep the typed text
	card.titleEntry.SetText("typing")
	card.UpdateNote(card.Note().WithFavoriteToggled())
	assert.Equal(t, "typing", card.titleEntry.Text)
	assert.Equal(t, IconStarEmpty, card.starBtn.Text)
}

func TestNoteCard_SameColorDoesNotCallBack(t *testing.T) {
	test.NewApp()

	card := NewNoteCard(model.Note{ID: 1, Title: "a", Color: model.Palette[1]}, NewLocalization())
	calls := 0
	card.SetCallbacks(nil, func(int64, string) { calls++ }, nil, nil)

	test.Tap(card.palette.Swatches()[1])
	assert.Equal(t, 0, calls)

	test.Tap(card.palette.Swatches()[2])
	assert.Equal(t, 1, calls)
}
