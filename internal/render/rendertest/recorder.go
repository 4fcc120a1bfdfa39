// Package rendertest provides a Renderer that records calls, for tests.
package rendertest

import (
	"fmt"
	"image/color"

	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
)

// Call is one recorded Renderer call.
type Call struct {
	Op     string
	From   geom.Point
	To     geom.Point
	Color  color.Color
	Radius float64
	W, H   int
}

func (c Call) String() string {
	switch c.Op {
	case "begin":
		return fmt.Sprintf("begin %v", c.From)
	case "extend":
		return fmt.Sprintf("extend %v->%v", c.From, c.To)
	case "overlay":
		return fmt.Sprintf("overlay %v r=%.2f", c.From, c.Radius)
	case "resize":
		return fmt.Sprintf("resize %dx%d", c.W, c.H)
	}
	return c.Op
}

// Recorder keeps every call in order. Style changes are not calls; the
// latest ones are kept in StrokeWidth and Accent.
type Recorder struct {
	Calls []Call

	StrokeWidth float64
	Accent      color.Color
}

var (
	_ render.Renderer = (*Recorder)(nil)
	_ render.Styler   = (*Recorder)(nil)
)

func (r *Recorder) SetStrokeWidth(width float64) { r.StrokeWidth = width }
func (r *Recorder) SetAccent(c color.Color)      { r.Accent = c }

func (r *Recorder) BeginStroke(p geom.Point, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "begin", From: p, Color: c})
}

func (r *Recorder) ExtendStroke(from, to geom.Point) {
	r.Calls = append(r.Calls, Call{Op: "extend", From: from, To: to})
}

func (r *Recorder) DrawCircleOverlay(center geom.Point, radius float64) {
	r.Calls = append(r.Calls, Call{Op: "overlay", From: center, Radius: radius})
}

func (r *Recorder) Resize(width, height int) {
	r.Calls = append(r.Calls, Call{Op: "resize", W: width, H: height})
}

// Ops returns the recorded call names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls named op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = nil
	r.StrokeWidth = 0
	r.Accent = nil
}
