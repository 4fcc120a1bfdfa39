package ui

import (
	"context"
	"log/slog"

	"Montagsmaler/internal/board"
	"Montagsmaler/internal/config"
	"Montagsmaler/internal/net"
	"Montagsmaler/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ViewerView is a read-only board that replays a live feed.
type ViewerView struct {
	Content fyne.CanvasObject
	Board   *BoardWidget
	Status  *widget.Label
	Surface *render.Surface
}

func NewViewerView(cfg config.Config) *ViewerView {
	surface := render.NewSurface(cfg.StrokeWidth, cfg.Accent())
	status := widget.NewLabel(board.StatusIdle)
	b := NewBoardWidget(surface, nil)
	surface.OnChange = b.Refresh

	return &ViewerView{
		Content: container.NewBorder(status, nil, nil, nil, b),
		Board:   b,
		Status:  status,
		Surface: surface,
	}
}

// Apply replays one feed message. It must run on the UI goroutine.
func (v *ViewerView) Apply(msg net.Message) {
	if err := net.Replay(msg, v.Surface, v.Status.SetText); err != nil {
		slog.Warn("skipping feed message", "component", "ui", "err", err)
	}
}

// RunViewer opens a window replaying the feed at addr and blocks until it
// is closed.
func RunViewer(ctx context.Context, cfg config.Config, addr string) error {
	a := app.NewWithID(AppID + ".viewer")
	w := a.NewWindow("Montagsmaler - watching " + addr)
	w.Resize(fyne.NewSize(1024, 768))

	view := NewViewerView(cfg)
	w.SetContent(view.Content)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w.SetOnClosed(cancel)

	go func() {
		err := net.Watch(ctx, addr, func(msg net.Message) {
			fyne.Do(func() { view.Apply(msg) })
		})
		text := "Board closed the feed."
		if err != nil {
			slog.Error("watch failed", "component", "ui", "err", err)
			text = "Disconnected: " + err.Error()
		}
		fyne.Do(func() { view.Status.SetText(text) })
	}()

	w.ShowAndRun()
	return nil
}
