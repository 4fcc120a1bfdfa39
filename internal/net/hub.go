package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/state"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	FeedPath = "/feed"

	sendQueueSize = 256
	writeWait     = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// watchers run on other machines of the local network
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub mirrors every render call to the connected watchers. It implements
// render.Renderer so it can sit next to the local surface in a render.Tee.
// Strokes are never stored; a watcher only sees what is drawn after it
// connects. The board size is the exception: a new watcher first receives
// a resize to the current size so it has a surface to draw on.
type Hub struct {
	session     string
	seq         atomic.Uint64
	strokeWidth float64
	accent      string

	mu      sync.RWMutex
	clients map[*client]bool
	width   int
	height  int
}

var _ render.Renderer = (*Hub)(nil)

// NewHub returns a hub announcing strokes of the given width and circle
// overlays in accent. Zero values fall back to the surface defaults.
func NewHub(strokeWidth float64, accent color.Color) *Hub {
	if strokeWidth <= 0 {
		strokeWidth = render.DefaultStrokeWidth
	}
	if accent == nil {
		accent = render.DefaultAccent
	}
	return &Hub{
		session:     uuid.NewString(),
		strokeWidth: strokeWidth,
		accent:      state.HexOf(accent),
		clients:     make(map[*client]bool),
	}
}

func (h *Hub) Session() string { return h.session }

// Clients returns the number of connected watchers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) BeginStroke(p geom.Point, c color.Color) {
	h.publish(Message{Type: MsgBegin, From: &p, Color: state.HexOf(c), StrokeWidth: h.strokeWidth})
}

func (h *Hub) ExtendStroke(from, to geom.Point) {
	h.publish(Message{Type: MsgExtend, From: &from, To: &to})
}

func (h *Hub) DrawCircleOverlay(center geom.Point, radius float64) {
	h.publish(Message{Type: MsgOverlay, From: &center, Radius: radius, Color: h.accent})
}

func (h *Hub) Resize(width, height int) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
	h.publish(Message{Type: MsgResize, Width: width, Height: height})
}

// Size returns the last size the board was resized to.
func (h *Hub) Size() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.width, h.height
}

// Status forwards a status line change.
func (h *Hub) Status(text string) {
	h.publish(Message{Type: MsgStatus, Text: text})
}

func (h *Hub) encode(msg Message) ([]byte, error) {
	msg.Session = h.session
	msg.Seq = h.seq.Add(1)
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", msg.Type, err)
	}
	return data, nil
}

func (h *Hub) publish(msg Message) {
	data, err := h.encode(msg)
	if err != nil {
		slog.Warn("dropping feed message", "component", "net", "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slog.Warn("watcher too slow, dropping message", "component", "net",
				"remote", c.conn.RemoteAddr().String(), "type", msg.Type)
		}
	}
}

// add registers c. When the board already has a size, c's queue starts
// with a resize to it. Holding the write lock keeps any publish from
// slipping in ahead of that message.
func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.width > 0 && h.height > 0 {
		data, err := h.encode(Message{Type: MsgResize, Width: h.width, Height: h.height})
		if err != nil {
			slog.Warn("dropping initial size", "component", "net", "err", err)
		} else {
			c.send <- data
		}
	}
	h.clients[c] = true
	slog.Info("watcher connected", "component", "net", "remote", c.conn.RemoteAddr().String())
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
		slog.Info("watcher disconnected", "component", "net", "remote", c.conn.RemoteAddr().String())
	}
}

// ServeHTTP upgrades the request to a websocket and streams the feed to it
// until either side closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "component", "net", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendQueueSize)}
	h.add(c)

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop only drains control frames; watchers never send data.
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("send to watcher failed", "component", "net",
				"remote", c.conn.RemoteAddr().String(), "err", err)
			c.conn.Close()
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// Serve listens on addr and serves the feed until ctx is done. The bound
// port is sent on ready once listening, which matters for ":0".
func (h *Hub) Serve(ctx context.Context, addr string, ready chan<- int) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	slog.Info("live feed listening", "component", "net", "addr", ln.Addr().String(), "session", h.session)
	if ready != nil {
		ready <- port
	}

	mux := http.NewServeMux()
	mux.Handle(FeedPath, h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		h.closeAll()
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve feed: %w", err)
	}
	return nil
}

func (h *Hub) closeAll() {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c.conn)
	}
	h.mu.RUnlock()
	for _, conn := range conns {
		conn.Close()
	}
}
