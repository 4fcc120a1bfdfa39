package net

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gorilla/websocket"
)

// FeedURL turns "host:port", "ws://host:port" or a full feed URL into the
// websocket URL of the feed.
func FeedURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if !strings.HasPrefix(addr, "ws://") && !strings.HasPrefix(addr, "wss://") {
		addr = "ws://" + addr
	}
	addr = strings.TrimSuffix(addr, "/")
	if !strings.HasSuffix(addr, FeedPath) {
		addr += FeedPath
	}
	return addr
}

// Watch connects to a feed and calls handle for every message until ctx is
// done or the board closes the connection. A clean close by either side
// returns nil.
func Watch(ctx context.Context, addr string, handle func(Message)) error {
	url := FeedURL(addr)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", url, err)
	}
	defer conn.Close()
	slog.Info("watching board", "component", "net", "url", url)

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read feed: %w", err)
		}
		handle(msg)
	}
}
