// Package main provides the jobmatch CLI: score a resume against a job's
// requirements, suggest edits, recommend an action, or serve the REST API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Resume-to-job matching copilot",
	Long:  "jobmatch evaluates a resume against a job's requirements, scores the match, proposes non-fabricating resume edits, and recommends a next action.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
