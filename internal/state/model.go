package state

import (
	"Montagsmaler/internal/geom"
)

// DrawingState is what survives between gestures: the selected color and
// whether a gesture is in progress. It is a value; transitions return a
// new DrawingState.
type DrawingState struct {
	Color     Color
	Active    bool
	GestureID string
}

func NewDrawingState(c Color) DrawingState {
	return DrawingState{Color: c}
}

// WithColor returns the state with a new selected color. The active flag
// is untouched; the color only applies to the next gesture.
func (s DrawingState) WithColor(c Color) DrawingState {
	s.Color = c
	return s
}

// Begin marks a gesture as in progress.
func (s DrawingState) Begin(gestureID string) DrawingState {
	s.Active = true
	s.GestureID = gestureID
	return s
}

// End marks the gesture finished or cancelled.
func (s DrawingState) End() DrawingState {
	s.Active = false
	s.GestureID = ""
	return s
}

// Stroke accumulates the points of one gesture in capture order. It is
// not safe for concurrent use; only one gesture is ever active.
type Stroke struct {
	points []geom.Point
}

// Start resets the stroke to the single point p.
func (s *Stroke) Start(p geom.Point) {
	s.points = append(s.points[:0], p)
}

// Append adds p to the end of the stroke. There is no upper bound.
func (s *Stroke) Append(p geom.Point) {
	s.points = append(s.points, p)
}

func (s *Stroke) Clear() {
	s.points = s.points[:0]
}

func (s *Stroke) Len() int {
	return len(s.points)
}

// Last returns the n-th point from the end (Last(0) is the newest).
func (s *Stroke) Last(n int) (geom.Point, bool) {
	i := len(s.points) - 1 - n
	if n < 0 || i < 0 {
		return geom.Point{}, false
	}
	return s.points[i], true
}

// Snapshot returns a copy of the captured points. The copy stays valid
// after Clear or Start reuse the underlying storage.
func (s *Stroke) Snapshot() []geom.Point {
	out := make([]geom.Point, len(s.points))
	copy(out, s.points)
	return out
}
