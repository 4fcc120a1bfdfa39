package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Montagsmaler/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg = config.Default()
	t.Cleanup(func() { cfg = config.Default() })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifySquareFromStdin(t *testing.T) {
	out, err := runCommand(t, `[[0,0],[10,0],[10,10],[0,10]]`, "classify")
	require.NoError(t, err)
	assert.Equal(t, "circle=true centroid=(5.0000,5.0000) radius=7.0711 cv=0.0000\n", out)
}

func TestClassifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[0,0],[50,0],[100,0]]`), 0o644))

	out, err := runCommand(t, "", "classify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "circle=false")
	assert.Contains(t, out, "cv=0.7071")
}

func TestClassifyUsesThresholdFlag(t *testing.T) {
	out, err := runCommand(t, `[[0,0],[50,0],[100,0]]`, "classify", "--threshold=0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "circle=true")
}

func TestClassifyErrors(t *testing.T) {
	_, err := runCommand(t, `not json`, "classify")
	assert.Error(t, err)

	_, err = runCommand(t, `[]`, "classify")
	assert.Error(t, err)

	_, err = runCommand(t, "", "classify", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = runCommand(t, `[[0,0]]`, "classify", "--threshold=0")
	assert.ErrorIs(t, err, config.ErrInvalidThreshold)
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}
