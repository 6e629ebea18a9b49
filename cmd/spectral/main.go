// Package main provides the spectral normalization demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// rootCmd is the base command for the spectral CLI.
var rootCmd = &cobra.Command{
	Use:   "spectral",
	Short: "Spectral normalization estimator playground",
	Long: `spectral exercises the power-iteration spectral norm estimator on
synthetic weight matrices and compares its running estimate against a
full singular value decomposition.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spectral %s\n", version)
		fmt.Println("Use 'spectral converge' to run the estimator against an SVD reference")
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spectral %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
