package config

import (
	"image/color"
	"testing"

	"Montagsmaler/internal/shape"
	"Montagsmaler/internal/state"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	colors, err := c.Colors()
	require.NoError(t, err)
	assert.Equal(t, state.Palette, colors)
	assert.Equal(t, state.Black, c.Initial())
	assert.Equal(t, color.NRGBA{R: 255, G: 165, A: 255}, c.Accent())
	assert.Equal(t, shape.Default(), c.Classifier())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.StrokeWidth = 0 }, ErrInvalidStrokeWidth},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }, ErrInvalidThreshold},
		{"empty palette", func(c *Config) { c.Palette = nil }, ErrEmptyPalette},
		{"unknown palette color", func(c *Config) { c.Palette = []string{"red", "pink"} }, state.ErrUnknownColor},
		{"unknown initial color", func(c *Config) { c.InitialColor = "pink" }, state.ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}

	c := Default()
	c.Palette = []string{"red", "blue"}
	assert.Error(t, c.Validate(), "black is not in the palette")

	c = Default()
	c.OverlayColor = "chartreuse-ish"
	assert.Error(t, c.Validate())
}

func TestBindFlags(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)

	err := fs.Parse([]string{
		"--stroke-width=4",
		"--threshold=0.25",
		"--palette=blue,red",
		"--color=red",
		"--overlay-color=#00ff00",
		"--share=:9000",
		"--advertise=false",
	})
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 4.0, c.StrokeWidth)
	assert.Equal(t, 0.25, c.Classifier().Threshold)
	assert.Equal(t, []string{"blue", "red"}, c.Palette)
	assert.Equal(t, state.Red, c.Initial())
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, c.Accent())
	assert.Equal(t, ":9000", c.ShareAddr)
	assert.False(t, c.Advertise)
}
