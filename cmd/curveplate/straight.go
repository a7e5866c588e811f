package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate"
)

var straightLength float64

var straightCmd = &cobra.Command{
	Use:   "straight",
	Short: "Generate a straight template",
	Long:  `Generates a rectangular template of the given length and gauge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gauge, err := resolveGauge(cmd)
		if err != nil {
			return err
		}
		params := curveplate.Straight{Gauge: gauge, Length: straightLength}
		return buildAndWrite(params, fmt.Sprintf("straight-%g", straightLength))
	},
}

func init() {
	rootCmd.AddCommand(straightCmd)
	straightCmd.Flags().Float64Var(&straightLength, "length", 0, "template length in mm")
	straightCmd.MarkFlagRequired("length")
}
