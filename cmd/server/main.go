// Package main is the entry point for the facility API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "facility-api",
	Short: "Facility occupant tracking API",
	Long: `facility-api tracks occupants moving through a facility modeled as a
weighted graph of rooms, and answers exit-routing and contact-tracing
queries over the recorded movement history.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
