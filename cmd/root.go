package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"Montagsmaler/internal/config"
	"Montagsmaler/internal/ui"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	cfg      = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "montagsmaler",
	Short: "Freehand drawing board that recognises circles",
	Long: `Montagsmaler opens a drawing board. Draw a stroke and release the mouse:
if the stroke is round enough, a perfect circle is drawn over it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
	RunE: runDraw,
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Open the drawing board (default)",
	Args:  cobra.NoArgs,
	RunE:  runDraw,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cfg.BindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	slog.Debug("starting board", "component", "cmd", "threshold", cfg.Threshold, "share", cfg.ShareAddr)
	return ui.RunApp(cfg)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func setupLogging(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	gg.SetLogger(logger.With("component", "gg"))
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
