// Package shape decides whether a captured stroke is a circle.
//
// The test is a coefficient of variation: take the distance of every point
// from the stroke's centroid, and compare the (population) standard
// deviation of those radii to their mean. A hand-drawn circle keeps every
// point at roughly the same radius, so the ratio stays small.
//
// Any point set that is equidistant from its centroid passes, including
// the four corners of a square. That is a property of the statistic.
package shape

import (
	"Montagsmaler/internal/geom"

	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultThreshold is the largest CV (exclusive) still called a circle.
	DefaultThreshold = 0.18
	// DefaultEpsilon is the mean radius below which a stroke is treated as
	// a click rather than a shape.
	DefaultEpsilon = 1e-9
)

// Result is the outcome of classifying one stroke.
type Result struct {
	IsCircle   bool
	Centroid   geom.Point
	MeanRadius float64
	// CV is the roundness statistic; 0 for degenerate input.
	CV float64
}

// Classifier holds the tunables of the roundness test. The zero value is
// not usable; start from Default.
type Classifier struct {
	Threshold float64
	Epsilon   float64
}

func Default() Classifier {
	return Classifier{Threshold: DefaultThreshold, Epsilon: DefaultEpsilon}
}

// Classify runs the default classifier over points.
func Classify(points []geom.Point) Result {
	return Default().Classify(points)
}

// Classify computes the roundness of points. It is total: an empty slice
// yields the zero Result, and a stroke whose points all coincide yields a
// non-circle with its centroid and zero CV.
func (c Classifier) Classify(points []geom.Point) Result {
	if len(points) == 0 {
		return Result{}
	}

	centroid := geom.Centroid(points)
	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = geom.Distance(p, centroid)
	}
	mean, std := stat.PopMeanStdDev(radii, nil)

	res := Result{Centroid: centroid, MeanRadius: mean}
	if mean < c.Epsilon {
		return res
	}
	res.CV = std / mean
	res.IsCircle = res.CV < c.Threshold
	return res
}
