package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/corenotes/corenotes/internal/model"
)

var swatchBorder = color.NRGBA{A: 60}

// ColorSwatch is a small tappable square filled with a palette color
type ColorSwatch struct {
	widget.BaseWidget

	hex      string
	size     float32
	selected bool
	onTapped func(hex string)
}

// NewColorSwatch creates a swatch for hex
func NewColorSwatch(hex string, size float32, onTapped func(hex string)) *ColorSwatch {
	s := &ColorSwatch{hex: hex, size: size, onTapped: onTapped}
	s.ExtendBaseWidget(s)
	return s
}

// Hex returns the swatch color as sent to the API
func (s *ColorSwatch) Hex() string {
	return s.hex
}

// Selected reports whether the swatch is highlighted
func (s *ColorSwatch) Selected() bool {
	return s.selected
}

// SetSelected highlights the swatch
func (s *ColorSwatch) SetSelected(selected bool) {
	if s.selected == selected {
		return
	}
	s.selected = selected
	s.Refresh()
}

// Tapped implements fyne.Tappable
func (s *ColorSwatch) Tapped(*fyne.PointEvent) {
	if s.onTapped != nil {
		s.onTapped(s.hex)
	}
}

// Cursor implements desktop.Cursorable
func (s *ColorSwatch) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (s *ColorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(model.ParseHexColor(s.hex))
	rect.CornerRadius = SwatchCornerRadius
	r := &swatchRenderer{swatch: s, rect: rect}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *ColorSwatch
	rect   *canvas.Rectangle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(r.swatch.size)
}

func (r *swatchRenderer) Refresh() {
	r.rect.FillColor = model.ParseHexColor(r.swatch.hex)
	if r.swatch.selected {
		r.rect.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.rect.StrokeWidth = 2
	} else {
		r.rect.StrokeColor = swatchBorder
		r.rect.StrokeWidth = 1
	}
	r.rect.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

func (r *swatchRenderer) Destroy() {}

// PalettePicker shows every palette color as a swatch row.
type PalettePicker struct {
	swatches  []*ColorSwatch
	selected  string
	container *fyne.Container

	// selectOnTap moves the highlight immediately; when false the owner
	// calls SetSelected once the change is confirmed.
	selectOnTap bool
	disabled    bool
	onChanged   func(hex string)
}

// NewPalettePicker creates a picker with the default color selected
func NewPalettePicker(size float32, selectOnTap bool, onChanged func(hex string)) *PalettePicker {
	p := &PalettePicker{
		selectOnTap: selectOnTap,
		onChanged:   onChanged,
	}

	objects := make([]fyne.CanvasObject, 0, len(model.Palette))
	for _, hex := range model.Palette {
		swatch := NewColorSwatch(hex, size, p.onSwatchTapped)
		p.swatches = append(p.swatches, swatch)
		objects = append(objects, swatch)
	}
	p.container = container.NewGridWrap(fyne.NewSquareSize(size), objects...)
	p.SetSelected(model.DefaultColor())
	return p
}

// Container returns the picker layout
func (p *PalettePicker) Container() *fyne.Container {
	return p.container
}

// Selected returns the highlighted color
func (p *PalettePicker) Selected() string {
	return p.selected
}

// SetSelected highlights hex; unknown colors leave nothing highlighted
func (p *PalettePicker) SetSelected(hex string) {
	p.selected = hex
	for _, s := range p.swatches {
		s.SetSelected(strings.EqualFold(s.Hex(), hex))
	}
}

// SetDisabled makes taps on the swatches do nothing
func (p *PalettePicker) SetDisabled(disabled bool) {
	p.disabled = disabled
}

// Disabled reports whether taps are ignored
func (p *PalettePicker) Disabled() bool {
	return p.disabled
}

// Swatches returns the swatches in palette order
func (p *PalettePicker) Swatches() []*ColorSwatch {
	return p.swatches
}

func (p *PalettePicker) onSwatchTapped(hex string) {
	if p.disabled {
		return
	}
	if p.selectOnTap {
		p.SetSelected(hex)
	}
	if p.onChanged != nil {
		p.onChanged(hex)
	}
}
