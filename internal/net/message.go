package net

import (
	"fmt"

	"Montagsmaler/internal/geom"
	"Montagsmaler/internal/render"
	"Montagsmaler/internal/state"
)

// MessageType names one render call or status update on the feed.
type MessageType string

const (
	MsgBegin   MessageType = "begin"
	MsgExtend  MessageType = "extend"
	MsgOverlay MessageType = "overlay"
	MsgResize  MessageType = "resize"
	MsgStatus  MessageType = "status"
)

// Message is the JSON form of everything a watcher needs to redraw the
// board.
type Message struct {
	Type    MessageType `json:"type"`
	Session string      `json:"session"`
	Seq     uint64      `json:"seq"`
	From    *geom.Point `json:"from,omitempty"`
	To      *geom.Point `json:"to,omitempty"`
	// Color is the stroke color on begin and the accent on overlay.
	Color string `json:"color,omitempty"`
	// StrokeWidth is sent on begin.
	StrokeWidth float64 `json:"width,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	Width       int     `json:"w,omitempty"`
	Height      int     `json:"h,omitempty"`
	Text        string  `json:"text,omitempty"`
}

// Replay applies msg to r, and status updates to status. When r is also a
// render.Styler it takes on the stroke width and accent carried by the
// message. Unknown or incomplete messages are reported as errors and leave
// r untouched.
func Replay(msg Message, r render.Renderer, status func(string)) error {
	styler, _ := r.(render.Styler)
	switch msg.Type {
	case MsgBegin:
		if msg.From == nil {
			return fmt.Errorf("%s message without point", msg.Type)
		}
		col, err := state.ParseAccent(msg.Color)
		if err != nil {
			return fmt.Errorf("%s message: %w", msg.Type, err)
		}
		if styler != nil && msg.StrokeWidth > 0 {
			styler.SetStrokeWidth(msg.StrokeWidth)
		}
		r.BeginStroke(*msg.From, col)
	case MsgExtend:
		if msg.From == nil || msg.To == nil {
			return fmt.Errorf("%s message without segment", msg.Type)
		}
		r.ExtendStroke(*msg.From, *msg.To)
	case MsgOverlay:
		if msg.From == nil {
			return fmt.Errorf("%s message without center", msg.Type)
		}
		if msg.Color != "" {
			accent, err := state.ParseAccent(msg.Color)
			if err != nil {
				return fmt.Errorf("%s message: %w", msg.Type, err)
			}
			if styler != nil {
				styler.SetAccent(accent)
			}
		}
		r.DrawCircleOverlay(*msg.From, msg.Radius)
	case MsgResize:
		r.Resize(msg.Width, msg.Height)
	case MsgStatus:
		if status != nil {
			status(msg.Text)
		}
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}
