package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate"
)

var (
	transitionRadius    float64
	transitionLength    float64
	transitionDirection string
)

var transitionCmd = &cobra.Command{
	Use:   "transition",
	Short: "Generate a clothoid transition template",
	Long: `Generates an Euler-spiral transition template easing from straight track
into a curve of the given end radius over the given length. The direction
is required: a transition template is handed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gauge, err := resolveGauge(cmd)
		if err != nil {
			return err
		}
		dir, err := curveplate.ParseDirection(transitionDirection)
		if err != nil {
			return err
		}

		params := curveplate.Transition{
			Gauge:     gauge,
			Radius:    transitionRadius,
			Length:    transitionLength,
			Direction: dir,
		}
		return buildAndWrite(params, fmt.Sprintf("transition-r%g-%s", transitionRadius, dir))
	},
}

func init() {
	rootCmd.AddCommand(transitionCmd)
	fl := transitionCmd.Flags()
	fl.Float64Var(&transitionRadius, "radius", 0, "radius of curvature at the far end in mm")
	fl.Float64Var(&transitionLength, "length", 0, "transition length in mm")
	fl.StringVar(&transitionDirection, "direction", "", "curve direction (left or right)")
	transitionCmd.MarkFlagRequired("radius")
	transitionCmd.MarkFlagRequired("length")
	transitionCmd.MarkFlagRequired("direction")
}
