package main

import (
	"fmt"
	"log"
	"os"

	"github.com/smasonuk/surfview"
	"github.com/spf13/cobra"
)

var (
	radius     float64
	rings      int
	segments   int
	timePoints int
	peak       float64
	configFile string
	noData     bool
)

func main() {
	root := &cobra.Command{
		Use:   "surfview",
		Short: "Interactive surface viewer with a diverging colormap",
		Long: "Renders a demo sphere whose vertices carry a spike-shaped time series\n" +
			"and displays it in an interactive window. Left/Right arrows cycle the\n" +
			"active time point, mouse drag rotates, the wheel zooms, q quits.",
		RunE: run,
	}

	root.Flags().Float64Var(&radius, "radius", 100, "sphere radius")
	root.Flags().IntVar(&rings, "rings", 24, "latitude bands of the demo sphere")
	root.Flags().IntVar(&segments, "segments", 32, "longitude segments of the demo sphere")
	root.Flags().IntVar(&timePoints, "time-points", 20, "number of time points per vertex")
	root.Flags().Float64Var(&peak, "peak", 0.5, "spike peak location in [0, 1]")
	root.Flags().StringVar(&configFile, "config", "", "path to a yaml viewer config")
	root.Flags().BoolVar(&noData, "no-data", false, "display the bare surface without scalar data")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := surfview.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = surfview.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	vertices, triangles := surfview.SphereMesh(radius, rings, segments)
	log.Printf("demo sphere: %d vertices, %d triangles", len(vertices), len(triangles))

	var vertexData [][]float64
	if !noData {
		if timePoints < 1 {
			timePoints = 1
		}
		times := make([]float64, timePoints)
		for t := range times {
			times[t] = float64(t) / float64(timePoints)
		}
		spike := surfview.GenerateSpike(times, peak)

		// Scale the waveform by vertex height so the two hemispheres
		// diverge in sign.
		vertexData = make([][]float64, len(vertices))
		for i, v := range vertices {
			row := make([]float64, len(spike))
			for t, w := range spike {
				row[t] = w * v[1] / radius
			}
			vertexData[i] = row
		}
	}

	renderable, err := surfview.BuildRenderable(vertices, triangles, vertexData)
	if err != nil {
		return fmt.Errorf("building renderable mesh: %w", err)
	}

	return surfview.NewRenderSession(renderable, cfg).Run()
}
