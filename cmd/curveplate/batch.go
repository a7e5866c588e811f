package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate/job"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <job.yaml>",
	Short: "Generate every template of a YAML job file",
	Long: `Reads a job file listing named templates and builds them concurrently.
Each entry produces the selected output formats under its own name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		j, err := job.Load(f)
		if err != nil {
			return err
		}

		results := job.Build(j, batchWorkers)
		if err := job.FirstError(results); err != nil {
			return err
		}
		for _, res := range results {
			if err := writeOutputs(res.Template.Name, res.Outline, res.Solid, flagFormats); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker goroutines; 0 means one per CPU")
}
