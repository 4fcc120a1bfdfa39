package state

import (
	"testing"

	"Montagsmaler/internal/geom"

	"github.com/stretchr/testify/assert"
)

func TestDrawingStateTransitions(t *testing.T) {
	s := NewDrawingState(Black)
	assert.False(t, s.Active)

	active := s.Begin("g1")
	assert.True(t, active.Active)
	assert.Equal(t, "g1", active.GestureID)
	assert.False(t, s.Active, "Begin must not mutate the receiver")

	recolored := active.WithColor(Red)
	assert.Equal(t, Red, recolored.Color)
	assert.True(t, recolored.Active)

	idle := recolored.End()
	assert.False(t, idle.Active)
	assert.Empty(t, idle.GestureID)
	assert.Equal(t, Red, idle.Color, "color persists across gestures")
}

func TestStrokeLifecycle(t *testing.T) {
	var s Stroke
	assert.Zero(t, s.Len())

	s.Start(geom.Pt(1, 1))
	s.Append(geom.Pt(2, 2))
	s.Append(geom.Pt(3, 3))
	assert.Equal(t, 3, s.Len())

	last, ok := s.Last(0)
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(3, 3), last)
	prev, ok := s.Last(1)
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(2, 2), prev)
	_, ok = s.Last(3)
	assert.False(t, ok)

	snap := s.Snapshot()
	s.Start(geom.Pt(9, 9))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)}, snap,
		"snapshot must not alias the accumulator")

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Snapshot())
}
