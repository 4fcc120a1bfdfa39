package net

import (
	"context"
	"image/color"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"Montagsmaler/internal/board"
	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/render/rendertest"
	"Montagsmaler/internal/shape"
	"Montagsmaler/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Clients() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHubStreamsToWatcher(t *testing.T) {
	hub := NewHub(3, color.NRGBA{R: 255, A: 255})
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan Message, 16)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- Watch(ctx, strings.TrimPrefix(srv.URL, "http://"), func(m Message) { got <- m })
	}()
	waitForClients(t, hub, 1)

	hub.Resize(200, 100)
	hub.BeginStroke(geom.Pt(1, 1), color.NRGBA{B: 255, A: 255})
	hub.ExtendStroke(geom.Pt(1, 1), geom.Pt(2, 2))
	hub.DrawCircleOverlay(geom.Pt(50, 50), 10)
	hub.Status("That's a circle.")

	rec := &rendertest.Recorder{}
	var status string
	var msgs []Message
	for i := 0; i < 5; i++ {
		select {
		case m := <-got:
			msgs = append(msgs, m)
			require.NoError(t, Replay(m, rec, func(s string) { status = s }))
		case <-ctx.Done():
			t.Fatal("timed out waiting for feed messages")
		}
	}

	assert.Equal(t, []string{"resize", "begin", "extend", "overlay"}, rec.Ops())
	assert.Equal(t, "That's a circle.", status)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, rec.Calls[1].Color)
	assert.Equal(t, 3.0, msgs[1].StrokeWidth)
	assert.Equal(t, "#ff0000", msgs[3].Color)
	assert.Equal(t, 3.0, rec.StrokeWidth)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, rec.Accent)
	for i, m := range msgs {
		assert.Equal(t, hub.Session(), m.Session)
		assert.Equal(t, uint64(i+1), m.Seq)
	}

	cancel()
	select {
	case err := <-watchErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	waitForClients(t, hub, 0)
}

func TestLateWatcherGetsBoardSize(t *testing.T) {
	hub := NewHub(4, nil)
	local := render.NewSurface(4, nil)
	ctrl := board.NewController(render.Tee(local, hub), shape.Default(), state.Black)
	ctrl.Resize(400, 300)
	ctrl.Resize(320, 240)

	srv := httptest.NewServer(hub)
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan Message, 16)
	go func() {
		_ = Watch(ctx, strings.TrimPrefix(srv.URL, "http://"), func(m Message) { got <- m })
	}()
	waitForClients(t, hub, 1)

	ctrl.PointerDown(geom.Pt(20, 120))
	for x := 40.0; x <= 120; x += 20 {
		ctrl.PointerMove(geom.Pt(x, 120))
	}
	ctrl.PointerUp()

	viewer := render.NewSurface(10, nil)
	var msgs []Message
	for len(msgs) < 5 {
		select {
		case m := <-got:
			msgs = append(msgs, m)
			require.NoError(t, Replay(m, viewer, nil))
		case <-ctx.Done():
			t.Fatalf("timed out after %d feed messages", len(msgs))
		}
	}

	assert.Equal(t, MsgResize, msgs[0].Type, "a new watcher starts with the board size")
	w, h := viewer.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	img := viewer.Image()
	require.NotNil(t, img)
	_, _, _, alpha := img.At(60, 120).RGBA()
	assert.NotZero(t, alpha, "strokes drawn after joining reach the watcher's surface")
	_, _, _, alpha = img.At(60, 116).RGBA()
	assert.Zero(t, alpha, "the board's stroke width is used, not the watcher's")
}

func TestHubWithoutWatchers(t *testing.T) {
	hub := NewHub(0, nil)
	hub.ExtendStroke(geom.Pt(0, 0), geom.Pt(1, 1))
	hub.Status("That is not a circle.")
	hub.Resize(50, 60)
	assert.Zero(t, hub.Clients())
	assert.NotEmpty(t, hub.Session())
	assert.NotEqual(t, hub.Session(), NewHub(0, nil).Session())
	w, h := hub.Size()
	assert.Equal(t, 50, w)
	assert.Equal(t, 60, h)
}

func TestHubServe(t *testing.T) {
	hub := NewHub(0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan int, 1)
	serveErr := make(chan error, 1)
	go func() { serveErr <- hub.Serve(ctx, "127.0.0.1:0", ready) }()

	var port int
	select {
	case port = <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not start listening")
	}
	require.NotZero(t, port)

	watchCtx, stopWatch := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopWatch()
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- Watch(watchCtx, "127.0.0.1:"+strconv.Itoa(port), func(Message) {})
	}()
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	select {
	case <-watchErr:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher was not disconnected on shutdown")
	}
}

func TestWatchUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := Watch(ctx, "127.0.0.1:1", func(Message) {})
	assert.Error(t, err)
}
