package render

import (
	"image"
	"image/color"
	"log/slog"
	"sync"

	"Montagsmaler/internal/geom"

	"github.com/gogpu/gg"
)

const DefaultStrokeWidth = 10.0

// DefaultAccent is CSS orange.
var DefaultAccent = color.NRGBA{R: 255, G: 165, A: 255}

// Surface is a raster drawing surface. Until the first Resize with a
// positive size there is nothing to draw on, and every drawing call is a
// silent no-op.
type Surface struct {
	mu     sync.Mutex
	ctx    *gg.Context
	width  float64
	accent color.Color

	strokeColor color.Color
	cursor      geom.Point
	generation  uint64

	// OnChange, when set, is called after the pixels change.
	OnChange func()
}

var (
	_ Renderer = (*Surface)(nil)
	_ Styler   = (*Surface)(nil)
)

// NewSurface returns an unsized surface that strokes with the given width
// and draws overlays in accent.
func NewSurface(strokeWidth float64, accent color.Color) *Surface {
	if strokeWidth <= 0 {
		strokeWidth = DefaultStrokeWidth
	}
	if accent == nil {
		accent = DefaultAccent
	}
	return &Surface{width: strokeWidth, accent: accent, strokeColor: color.Black}
}

// SetStrokeWidth changes the width of later segments and overlays.
// Non-positive widths are ignored.
func (s *Surface) SetStrokeWidth(width float64) {
	if width <= 0 {
		return
	}
	s.mu.Lock()
	s.width = width
	s.mu.Unlock()
}

// SetAccent changes the color of later circle overlays.
func (s *Surface) SetAccent(c color.Color) {
	if c == nil {
		return
	}
	s.mu.Lock()
	s.accent = c
	s.mu.Unlock()
}

func (s *Surface) BeginStroke(p geom.Point, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		c = color.Black
	}
	s.strokeColor = c
	s.cursor = p
}

func (s *Surface) ExtendStroke(from, to geom.Point) {
	s.mu.Lock()
	if s.ctx == nil {
		s.mu.Unlock()
		return
	}
	s.ctx.SetColor(s.strokeColor)
	s.ctx.SetLineWidth(s.width)
	s.ctx.MoveTo(from.X, from.Y)
	s.ctx.LineTo(to.X, to.Y)
	err := s.ctx.Stroke()
	s.cursor = to
	s.generation++
	s.mu.Unlock()

	if err != nil {
		slog.Warn("stroke segment failed", "component", "render", "err", err)
	}
	s.changed()
}

func (s *Surface) DrawCircleOverlay(center geom.Point, radius float64) {
	s.mu.Lock()
	if s.ctx == nil || radius <= 0 {
		s.mu.Unlock()
		return
	}
	s.ctx.ClearPath()
	s.ctx.SetColor(s.accent)
	s.ctx.SetLineWidth(s.width)
	s.ctx.DrawCircle(center.X, center.Y, radius)
	err := s.ctx.Stroke()
	s.generation++
	s.mu.Unlock()

	if err != nil {
		slog.Warn("circle overlay failed", "component", "render", "err", err)
	}
	s.changed()
}

// Resize reallocates the surface. All prior drawing is lost, including
// when the size is unchanged. A non-positive size detaches the surface.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	if width <= 0 || height <= 0 {
		s.detachLocked()
		s.mu.Unlock()
		s.changed()
		return
	}
	if s.ctx != nil {
		_ = s.ctx.Close()
	}
	s.ctx = gg.NewContext(width, height)
	s.ctx.SetLineCap(gg.LineCapRound)
	s.ctx.SetLineJoin(gg.LineJoinRound)
	s.generation++
	s.mu.Unlock()
	s.changed()
}

// Size returns the current surface size, zero when detached.
func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return 0, 0
	}
	return s.ctx.Width(), s.ctx.Height()
}

// Cursor returns where the current stroke last ended.
func (s *Surface) Cursor() geom.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Image returns a copy of the surface pixels, or nil when detached.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Image()
}

// Generation increases every time the pixels change.
func (s *Surface) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked()
	return nil
}

func (s *Surface) detachLocked() {
	if s.ctx != nil {
		_ = s.ctx.Close()
		s.ctx = nil
		s.generation++
	}
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
