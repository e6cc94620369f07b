package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNow      string
	flagJSON     bool
	flagInsights bool
)

var rootCmd = &cobra.Command{
	Use:   "lifeplan",
	Short: "Life-plan net worth projections",
	Long:  "Project net worth month by month from a scenario file and compare scenario versions.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print JSON instead of a table")
}
