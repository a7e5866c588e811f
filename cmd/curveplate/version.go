package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curveplate/curveplate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of curveplate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curveplate version %s\n", curveplate.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
