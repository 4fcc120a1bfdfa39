package state

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned when a name is not part of the palette.
var ErrUnknownColor = errors.New("unknown color")

// Color is one of the fixed stroke colors a user can pick.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Black
)

// Palette is the full set of selectable colors in toolbar order.
var Palette = []Color{Red, Green, Blue, Black}

// Hex values follow the CSS named colors the board was designed with.
var colorInfo = map[Color]struct {
	name string
	hex  string
}{
	Red:   {"red", "#ff0000"},
	Green: {"green", "#008000"},
	Blue:  {"blue", "#0000ff"},
	Black: {"black", "#000000"},
}

func (c Color) String() string {
	if info, ok := colorInfo[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Hex returns the "#rrggbb" form of the color.
func (c Color) Hex() string {
	if info, ok := colorInfo[c]; ok {
		return info.hex
	}
	return colorInfo[Black].hex
}

// NRGBA returns the opaque drawing color.
func (c Color) NRGBA() color.NRGBA {
	return MustParseHex(c.Hex())
}

// ParseColor maps a palette name ("red", "Blue", ...) to its Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, info := range colorInfo {
		if info.name == name {
			return c, nil
		}
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ParsePalette parses a list of color names, rejecting duplicates.
func ParsePalette(names []string) ([]Color, error) {
	out := make([]Color, 0, len(names))
	seen := make(map[Color]bool)
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate palette color %q", n)
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

// namedAccents are the non-palette color names accepted for the overlay.
var namedAccents = map[string]string{
	"orange": "#ffa500",
	"white":  "#ffffff",
}

// ParseAccent resolves a palette name, one of a few extra CSS names, or a
// "#rrggbb" hex string to a color.
func ParseAccent(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, err := ParseColor(s); err == nil {
		return c.NRGBA(), nil
	}
	if hex, ok := namedAccents[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return toNRGBA(c), nil
}

// MustParseHex parses a known-good "#rrggbb" constant.
func MustParseHex(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return toNRGBA(c)
}

// HexOf renders any color as "#rrggbb", dropping alpha.
func HexOf(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return "#000000"
	}
	return cf.Hex()
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
