package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	got := Add(Pt(1, 2), Pt(3, -5))
	assert.Equal(t, Pt(4, -3), got)
	assert.Equal(t, got, Pt(1, 2).Add(Pt(3, -5)))
}

func TestScale(t *testing.T) {
	assert.Equal(t, Pt(2, 5), Scale(Pt(4, 10), 2))
	assert.Equal(t, Pt(2, 5), Pt(4, 10).Scale(2))

	inf := Scale(Pt(1, 1), 0)
	assert.False(t, inf.IsFinite(), "division by zero should not produce a finite point")
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)), 1e-12)
	assert.InDelta(t, 5.0, Pt(3, 4).Distance(Pt(0, 0)), 1e-12)
	assert.Zero(t, Distance(Pt(7, 7), Pt(7, 7)))
}

func TestCentroid(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	assert.Equal(t, Pt(5, 5), Centroid(square))

	assert.Equal(t, Pt(3, -1), Centroid([]Point{Pt(3, -1)}))
	assert.Equal(t, Point{}, Centroid(nil))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Pt(1e300, -1e300).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(-1)).IsFinite())
}
