package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate"
)

var (
	curveRadius    float64
	curveAngle     float64
	curveArcLength float64
	curveDirection string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate a constant-radius curve template",
	Long: `Generates a curved template of the given radius. The span is given as
exactly one of --angle (degrees) or --length (arc length along the inner
boundary in mm); supplying both is an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gauge, err := resolveGauge(cmd)
		if err != nil {
			return err
		}

		var dir curveplate.Direction
		if curveDirection != "" {
			dir, err = curveplate.ParseDirection(curveDirection)
			if err != nil {
				return err
			}
		}

		params := curveplate.Curve{
			Gauge:     gauge,
			Radius:    curveRadius,
			ArcAngle:  curveAngle,
			ArcLength: curveArcLength,
			Direction: dir,
		}
		return buildAndWrite(params, fmt.Sprintf("curve-r%g", curveRadius))
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
	fl := curveCmd.Flags()
	fl.Float64Var(&curveRadius, "radius", 0, "radius to the inner boundary in mm")
	fl.Float64Var(&curveAngle, "angle", 0, "arc angle in degrees")
	fl.Float64Var(&curveArcLength, "length", 0, "arc length in mm")
	fl.StringVar(&curveDirection, "direction", "", "curve direction (left or right); default left")
	curveCmd.MarkFlagRequired("radius")
}
