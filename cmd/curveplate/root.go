package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate"
)

var (
	flagGauge      float64
	flagScale      string
	flagOut        string
	flagName       string
	flagFormats    []string
	flagPaper      string
	flagMargin     float64
	flagTitleBlock bool
	flagExtrude    float64
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "curveplate",
	Short: "Generate cutting templates for model-railway flex track",
	Long: `Curveplate computes exact template outlines for laying flexible track:
straight sections, constant-radius curves and clothoid (Euler spiral)
transitions. Outlines are exported as SVG and PDF cutting drawings,
STEP solids or PNG previews.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			curveplate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "curveplate:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagGauge, "gauge", curveplate.GaugeHO, "track gauge in mm")
	pf.StringVar(&flagScale, "scale", "", "named scale instead of --gauge (n, tt, ho, oo, o)")
	pf.StringVar(&flagOut, "out", ".", "output directory")
	pf.StringVar(&flagName, "name", "", "template name used for output files and the title block")
	pf.StringSliceVar(&flagFormats, "formats", nil, "output formats (svg, pdf, step, png); default svg,pdf")
	pf.StringVar(&flagPaper, "paper", "", "paper size (A0-A4, Letter); default auto-select")
	pf.Float64Var(&flagMargin, "margin", 0, "page margin in mm")
	pf.BoolVar(&flagTitleBlock, "title-block", true, "draw page border and title block")
	pf.Float64Var(&flagExtrude, "extrude", 0, "extrusion height in mm for 3D output")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

// resolveGauge returns the effective gauge from --gauge and --scale.
func resolveGauge(cmd *cobra.Command) (float64, error) {
	if flagScale == "" {
		return flagGauge, nil
	}
	if cmd.Flags().Changed("gauge") {
		return 0, fmt.Errorf("--gauge and --scale are mutually exclusive")
	}
	g, ok := curveplate.GaugeForScale(flagScale)
	if !ok {
		return 0, fmt.Errorf("unknown scale %q (want n, tt, ho, oo or o)", flagScale)
	}
	return g, nil
}
