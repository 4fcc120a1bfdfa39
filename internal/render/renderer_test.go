package render_test

import (
	"image/color"
	"testing"

	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/render/rendertest"

	"github.com/stretchr/testify/assert"
)

func TestTeeForwardsInOrder(t *testing.T) {
	a, b := &rendertest.Recorder{}, &rendertest.Recorder{}
	r := render.Tee(a, nil, b)

	r.Resize(10, 20)
	r.BeginStroke(geom.Pt(1, 1), color.Black)
	r.ExtendStroke(geom.Pt(1, 1), geom.Pt(2, 2))
	r.DrawCircleOverlay(geom.Pt(5, 5), 3)

	want := []string{"resize", "begin", "extend", "overlay"}
	assert.Equal(t, want, a.Ops())
	assert.Equal(t, want, b.Ops())
	assert.Equal(t, 3.0, b.Calls[3].Radius)
	assert.Equal(t, 20, a.Calls[0].H)
}
