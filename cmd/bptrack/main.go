// Package main provides the bptrack entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bptrack",
		Short: "Blood-pressure tracking service and risk engine",
		Long: `bptrack stores blood-pressure readings, classifies each reading into a
risk zone and describes the trend across a reading history.

Results are advisory only and are not a diagnosis.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newClassifyCmd(),
		newAssessCmd(),
	)
	return rootCmd
}
