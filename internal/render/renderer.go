// Package render draws strokes and circle overlays onto a persistent
// surface. Drawing only ever adds to the surface; resizing it is the one
// operation that wipes it.
package render

import (
	"image/color"

	"Montagsmaler/internal/geom"
)

// Renderer receives the drawing calls of the interaction controller.
type Renderer interface {
	// BeginStroke starts a freehand path at p without drawing anything.
	// The color is captured once per stroke.
	BeginStroke(p geom.Point, c color.Color)
	// ExtendStroke draws one segment of the current stroke.
	ExtendStroke(from, to geom.Point)
	// DrawCircleOverlay draws a full circle in the accent color,
	// independent of the current stroke.
	DrawCircleOverlay(center geom.Point, radius float64)
	// Resize sets the surface size in surface units and clears it.
	Resize(width, height int)
}

// Styler is implemented by renderers whose stroke width and overlay color
// can change after construction, so a replayed board can take on the
// style of the board it mirrors.
type Styler interface {
	SetStrokeWidth(width float64)
	SetAccent(c color.Color)
}

type tee []Renderer

// Tee returns a Renderer that forwards every call to each of rs in order.
// Nil entries are skipped.
func Tee(rs ...Renderer) Renderer {
	out := make(tee, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (t tee) BeginStroke(p geom.Point, c color.Color) {
	for _, r := range t {
		r.BeginStroke(p, c)
	}
}

func (t tee) ExtendStroke(from, to geom.Point) {
	for _, r := range t {
		r.ExtendStroke(from, to)
	}
}

func (t tee) DrawCircleOverlay(center geom.Point, radius float64) {
	for _, r := range t {
		r.DrawCircleOverlay(center, radius)
	}
}

func (t tee) Resize(width, height int) {
	for _, r := range t {
		r.Resize(width, height)
	}
}
