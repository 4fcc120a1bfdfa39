// Package config holds the tunables of the drawing board.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"Montagsmaler/internal/shape"
	"Montagsmaler/internal/state"

	"github.com/spf13/pflag"
)

var (
	ErrInvalidStrokeWidth = errors.New("stroke width must be positive")
	ErrInvalidThreshold   = errors.New("roundness threshold must be positive")
	ErrEmptyPalette       = errors.New("palette must not be empty")
)

type Config struct {
	StrokeWidth  float64
	OverlayColor string
	Threshold    float64
	Palette      []string
	InitialColor string

	// ShareAddr is the listen address of the live feed; empty disables it.
	ShareAddr string
	Advertise bool
}

func Default() Config {
	return Config{
		StrokeWidth:  10,
		OverlayColor: "orange",
		Threshold:    shape.DefaultThreshold,
		Palette:      []string{"red", "green", "blue", "black"},
		InitialColor: "black",
		Advertise:    true,
	}
}

// BindFlags registers every field on fs, using the current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&c.StrokeWidth, "stroke-width", c.StrokeWidth, "freehand and overlay line width")
	fs.StringVar(&c.OverlayColor, "overlay-color", c.OverlayColor, "color of the circle overlay (name or #rrggbb)")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "largest roundness statistic (exclusive) classified as a circle")
	fs.StringSliceVar(&c.Palette, "palette", c.Palette, "selectable stroke colors, in toolbar order")
	fs.StringVar(&c.InitialColor, "color", c.InitialColor, "stroke color selected at startup")
	fs.StringVar(&c.ShareAddr, "share", c.ShareAddr, "serve a live feed of the board on this address (e.g. :8888)")
	fs.BoolVar(&c.Advertise, "advertise", c.Advertise, "announce the live feed over mDNS")
}

func (c Config) Validate() error {
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidStrokeWidth, c.StrokeWidth)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.Threshold)
	}
	if _, err := state.ParseAccent(c.OverlayColor); err != nil {
		return fmt.Errorf("overlay color: %w", err)
	}
	palette, err := c.Colors()
	if err != nil {
		return err
	}
	initial, err := state.ParseColor(c.InitialColor)
	if err != nil {
		return fmt.Errorf("initial color: %w", err)
	}
	for _, p := range palette {
		if p == initial {
			return nil
		}
	}
	return fmt.Errorf("initial color %q is not in the palette", c.InitialColor)
}

// Colors returns the parsed palette.
func (c Config) Colors() ([]state.Color, error) {
	if len(c.Palette) == 0 {
		return nil, ErrEmptyPalette
	}
	palette, err := state.ParsePalette(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return palette, nil
}

// Accent returns the parsed overlay color, falling back to the default
// orange when it does not parse.
func (c Config) Accent() color.Color {
	col, err := state.ParseAccent(c.OverlayColor)
	if err != nil {
		return state.MustParseHex("#ffa500")
	}
	return col
}

// Initial returns the parsed startup color, black when it does not parse.
func (c Config) Initial() state.Color {
	col, err := state.ParseColor(c.InitialColor)
	if err != nil {
		return state.Black
	}
	return col
}

func (c Config) Classifier() shape.Classifier {
	cl := shape.Default()
	cl.Threshold = c.Threshold
	return cl
}
