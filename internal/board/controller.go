// Package board turns pointer events into strokes, classifies each
// finished stroke and drives the renderer and the status line.
//
// Events are delivered one at a time on the UI goroutine; Controller does
// no locking of its own.
package board

import (
	"log/slog"

	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/shape"
	"Montagsmaler/internal/state"

	"github.com/google/uuid"
)

const (
	StatusIdle      = "Nothing drawn yet!"
	StatusCircle    = "That's a circle."
	StatusNotCircle = "That is not a circle."
)

// Controller is the Idle/Dragging state machine of one drawing board.
type Controller struct {
	renderer   render.Renderer
	classifier shape.Classifier

	state  state.DrawingState
	stroke state.Stroke
	status string

	// OnStatus is called whenever the status text changes.
	OnStatus func(text string)
	// OnClassified is called with every classification result.
	OnClassified func(res shape.Result)
}

func NewController(r render.Renderer, classifier shape.Classifier, initial state.Color) *Controller {
	if r == nil {
		r = render.Tee()
	}
	return &Controller{
		renderer:   r,
		classifier: classifier,
		state:      state.NewDrawingState(initial),
		status:     StatusIdle,
	}
}

func (c *Controller) State() state.DrawingState { return c.state }
func (c *Controller) Status() string            { return c.status }
func (c *Controller) Dragging() bool            { return c.state.Active }

// Points returns a copy of the in-progress stroke.
func (c *Controller) Points() []geom.Point {
	return c.stroke.Snapshot()
}

// SelectColor changes the color of the next stroke. A stroke already in
// progress keeps its color.
func (c *Controller) SelectColor(col state.Color) {
	c.state = c.state.WithColor(col)
}

func (c *Controller) PointerDown(p geom.Point) {
	if !p.IsFinite() {
		return
	}
	if c.state.Active {
		slog.Debug("gesture restarted", "component", "board", "gesture", c.state.GestureID)
	}
	c.state = c.state.Begin(uuid.NewString())
	c.stroke.Start(p)
	c.renderer.BeginStroke(p, c.state.Color.NRGBA())
	slog.Debug("gesture started", "component", "board", "gesture", c.state.GestureID,
		"at", p.String(), "color", c.state.Color.String())
}

// PointerMove records p. The segment drawn is the one between the two
// newest points already captured, so the line trails the pointer by one
// sample.
func (c *Controller) PointerMove(p geom.Point) {
	if !c.state.Active || !p.IsFinite() {
		return
	}
	if c.stroke.Len() >= 2 {
		from, _ := c.stroke.Last(1)
		to, _ := c.stroke.Last(0)
		c.renderer.ExtendStroke(from, to)
	}
	c.stroke.Append(p)
}

// PointerUp finishes the gesture and classifies it.
func (c *Controller) PointerUp() {
	if !c.state.Active {
		return
	}
	points := c.stroke.Snapshot()
	res := c.classifier.Classify(points)

	slog.Debug("gesture classified", "component", "board", "gesture", c.state.GestureID,
		"points", len(points), "circle", res.IsCircle, "cv", res.CV,
		"centroid", res.Centroid.String(), "radius", res.MeanRadius)

	if res.IsCircle {
		c.setStatus(StatusCircle)
		c.renderer.DrawCircleOverlay(res.Centroid, res.MeanRadius)
	} else {
		c.setStatus(StatusNotCircle)
	}
	if c.OnClassified != nil {
		c.OnClassified(res)
	}
	c.stroke.Clear()
	c.state = c.state.End()
}

// PointerLeave abandons the gesture without classifying it.
func (c *Controller) PointerLeave() {
	if !c.state.Active {
		return
	}
	c.cancel("pointer left")
}

// Resize resizes the surface, which wipes it. A gesture in progress is
// cancelled since its earlier segments are gone.
func (c *Controller) Resize(width, height int) {
	c.renderer.Resize(width, height)
	if c.state.Active {
		c.cancel("surface resized")
	}
}

func (c *Controller) cancel(reason string) {
	slog.Debug("gesture cancelled", "component", "board", "gesture", c.state.GestureID,
		"reason", reason, "points", c.stroke.Len())
	c.stroke.Clear()
	c.state = c.state.End()
}

func (c *Controller) setStatus(text string) {
	c.status = text
	if c.OnStatus != nil {
		c.OnStatus(text)
	}
}
