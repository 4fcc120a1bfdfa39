// Package geom holds the 2D point arithmetic used by stroke capture and
// shape classification.
package geom

import (
	"fmt"
	"math"
)

// Point is a position on the drawing surface, in surface coordinates.
// Points are values; every operation returns a new Point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of a and b.
func Add(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Scale divides both coordinates by k. Callers guarantee k > 0; k == 0
// yields infinite coordinates.
func Scale(p Point, k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid returns the arithmetic mean of points. An empty slice has no
// centroid; the zero Point is returned for it.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = Add(sum, p)
	}
	return Scale(sum, float64(len(points)))
}

// Add is the method form of Add.
func (p Point) Add(o Point) Point {
	return Add(p, o)
}

// Scale is the method form of Scale.
func (p Point) Scale(k float64) Point {
	return Scale(p, k)
}

// Distance is the method form of Distance.
func (p Point) Distance(o Point) float64 {
	return Distance(p, o)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
