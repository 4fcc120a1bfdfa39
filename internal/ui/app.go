// Package ui is the fyne shell around the drawing board: the palette, the
// status line and the canvas widget.
package ui

import (
	"context"
	"fmt"
	"log/slog"

	"Montagsmaler/internal/board"
	"Montagsmaler/internal/config"
	"Montagsmaler/internal/net"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	AppID         = "io.montagsmaler.board"
	prefLastColor = "lastColor"
)

// DrawingView is the assembled drawing window content.
type DrawingView struct {
	Content    fyne.CanvasObject
	Board      *BoardWidget
	Palette    *Palette
	Status     *widget.Label
	Controller *board.Controller
	Surface    *render.Surface
}

// NewDrawingView wires a controller to a fresh surface, and to hub when it
// is not nil. The last selected color is restored from prefs.
func NewDrawingView(cfg config.Config, prefs fyne.Preferences, hub *net.Hub) (*DrawingView, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	initial := restoreColor(prefs, colors, cfg.Initial())

	surface := render.NewSurface(cfg.StrokeWidth, cfg.Accent())
	var renderer render.Renderer = surface
	if hub != nil {
		renderer = render.Tee(surface, hub)
	}
	ctrl := board.NewController(renderer, cfg.Classifier(), initial)

	status := widget.NewLabel(ctrl.Status())
	ctrl.OnStatus = func(text string) {
		status.SetText(text)
		if hub != nil {
			hub.Status(text)
		}
	}

	palette := NewPalette(colors, initial)
	palette.OnSelect = func(c state.Color) {
		ctrl.SelectColor(c)
		if prefs != nil {
			prefs.SetString(prefLastColor, c.String())
		}
	}

	b := NewBoardWidget(surface, ctrl)
	surface.OnChange = b.Refresh

	content := container.NewBorder(
		container.NewVBox(
			container.NewHBox(widget.NewLabel("Color:"), palette.Container, layout.NewSpacer()),
			status,
		),
		nil, nil, nil, b)

	return &DrawingView{
		Content:    content,
		Board:      b,
		Palette:    palette,
		Status:     status,
		Controller: ctrl,
		Surface:    surface,
	}, nil
}

func restoreColor(prefs fyne.Preferences, colors []state.Color, fallback state.Color) state.Color {
	if prefs == nil {
		return fallback
	}
	c, err := state.ParseColor(prefs.StringWithFallback(prefLastColor, fallback.String()))
	if err != nil {
		return fallback
	}
	for _, p := range colors {
		if p == c {
			return c
		}
	}
	return fallback
}

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(cfg config.Config) error {
	a := app.NewWithID(AppID)
	w := a.NewWindow("Montagsmaler")
	w.Resize(fyne.NewSize(1024, 768))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *net.Hub
	var shareLink *widget.Label
	if cfg.ShareAddr != "" {
		hub = net.NewHub(cfg.StrokeWidth, cfg.Accent())
		shareLink = widget.NewLabel("Starting live feed...")
		if err := startFeed(ctx, hub, cfg, shareLink); err != nil {
			return err
		}
	}

	view, err := NewDrawingView(cfg, a.Preferences(), hub)
	if err != nil {
		return err
	}
	content := view.Content
	if shareLink != nil {
		content = container.NewBorder(nil, shareLink, nil, nil, content)
	}
	w.SetContent(content)
	w.SetOnClosed(func() {
		_ = view.Surface.Close()
	})
	w.ShowAndRun()
	return nil
}

// startFeed serves hub in the background and puts the share link into
// label once the port is known.
func startFeed(ctx context.Context, hub *net.Hub, cfg config.Config, label *widget.Label) error {
	ready := make(chan int, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- hub.Serve(ctx, cfg.ShareAddr, ready)
	}()

	var port int
	select {
	case port = <-ready:
	case err := <-errc:
		return err
	}

	link := fmt.Sprintf("ws://%s:%d%s", net.OutgoingIP(), port, net.FeedPath)
	label.SetText("Live feed: " + link)
	slog.Info("sharing board", "component", "ui", "link", link)

	if cfg.Advertise {
		server, err := net.Advertise(port)
		if err != nil {
			slog.Warn("mDNS advertise failed", "component", "ui", "err", err)
		} else {
			context.AfterFunc(ctx, func() { _ = server.Shutdown() })
		}
	}

	go func() {
		if err := <-errc; err != nil {
			slog.Error("live feed stopped", "component", "ui", "err", err)
			fyne.Do(func() { label.SetText("Live feed stopped: " + err.Error()) })
		}
	}()
	return nil
}
