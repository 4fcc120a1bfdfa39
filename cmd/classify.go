package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"Montagsmaler/internal/geom"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a stroke given as JSON",
	Long: `Reads a stroke as a JSON array of [x, y] pairs, from a file or stdin,
and reports whether it is a circle.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	points, err := readPoints(r)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("stroke has no points")
	}

	res := cfg.Classifier().Classify(points)
	fmt.Fprintf(cmd.OutOrStdout(), "circle=%t centroid=(%.4f,%.4f) radius=%.4f cv=%.4f\n",
		res.IsCircle, res.Centroid.X, res.Centroid.Y, res.MeanRadius, res.CV)
	return nil
}

func readPoints(r io.Reader) ([]geom.Point, error) {
	var pairs [][2]float64
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("decode stroke: %w", err)
	}
	points := make([]geom.Point, 0, len(pairs))
	for i, p := range pairs {
		pt := geom.Pt(p[0], p[1])
		if !pt.IsFinite() {
			return nil, fmt.Errorf("point %d is not finite", i)
		}
		points = append(points, pt)
	}
	return points, nil
}
