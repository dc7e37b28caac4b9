// Package main is the entry point for the spells API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spells-api",
	Short: "Pathfinder spell reference backend",
	Long:  `spells-api scrapes, caches, and serves Pathfinder spell and class reference data for chat transports.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(refreshCmd)
}
