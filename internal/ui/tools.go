package ui

import (
	"image/color"

	"Montagsmaler/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	swatchBorder   = color.Gray{Y: 150}
	swatchSelected = color.NRGBA{R: 255, G: 77, B: 79, A: 255}
)

// colorSwatch is one palette button.
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)

	selected bool
	border   *canvas.Rectangle
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	s.border = canvas.NewRectangle(color.Transparent)
	s.applySelection()

	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) setSelected(selected bool) {
	s.selected = selected
	if s.border != nil {
		s.applySelection()
		s.border.Refresh()
	}
}

func (s *colorSwatch) applySelection() {
	if s.selected {
		s.border.StrokeColor = swatchSelected
		s.border.StrokeWidth = 3
		return
	}
	s.border.StrokeColor = swatchBorder
	s.border.StrokeWidth = 1
}

// Palette is the row of color buttons. Exactly one is marked selected.
type Palette struct {
	*fyne.Container
	swatches []*colorSwatch
	selected state.Color

	OnSelect func(state.Color)
}

func NewPalette(colors []state.Color, selected state.Color) *Palette {
	p := &Palette{selected: selected}
	objects := make([]fyne.CanvasObject, 0, len(colors))
	for _, c := range colors {
		sw := newColorSwatch(c, p.Select)
		sw.selected = c == selected
		p.swatches = append(p.swatches, sw)
		objects = append(objects, sw)
	}
	p.Container = container.NewHBox(objects...)
	return p
}

func (p *Palette) Selected() state.Color { return p.selected }

// Select marks c as the current color and notifies OnSelect.
func (p *Palette) Select(c state.Color) {
	p.selected = c
	for _, sw := range p.swatches {
		sw.setSelected(sw.Color == c)
	}
	if p.OnSelect != nil {
		p.OnSelect(c)
	}
}
