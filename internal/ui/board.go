package ui

import (
	"image"
	"image/color"

	"Montagsmaler/internal/board"
	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows a drawing surface and feeds pointer events to a
// controller. Without a controller it is a read-only view.
type BoardWidget struct {
	widget.BaseWidget
	surface    *render.Surface
	controller *board.Controller
	minSize    fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(s *render.Surface, c *board.Controller) *BoardWidget {
	b := &BoardWidget{
		surface:    s,
		controller: c,
		minSize:    fyne.NewSize(300, 300),
	}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.controller == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.controller.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if b.controller == nil || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.controller.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.controller == nil {
		return
	}
	b.controller.PointerMove(toPoint(e.Position))
}

// DragEnd can arrive after MouseUp; the controller ignores the second end.
func (b *BoardWidget) DragEnd() {
	if b.controller == nil {
		return
	}
	b.controller.PointerUp()
}

func (b *BoardWidget) MouseOut() {
	if b.controller == nil {
		return
	}
	b.controller.PointerLeave()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		if img := b.surface.Image(); img != nil {
			return img
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	})
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
	size       fyne.Size
}

// Layout tracks the widget size. Only an interactive board owns its
// surface size; a viewer follows the size sent by the board it watches.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
	if size == r.size {
		return
	}
	r.size = size
	if c := r.board.controller; c != nil {
		c.Resize(int(size.Width), int(size.Height))
	}
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Destroy() {}
