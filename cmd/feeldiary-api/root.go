package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feeldiary-api",
	Short: "FeelDiary API server",
	Long:  `A REST API server for the FeelDiary mood journaling application.`,
}

// Execute runs the root command
func Execute() {
	// Load .env for local development; deployed environments set real env vars.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
