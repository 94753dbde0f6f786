package main

import (
	"github.com/spf13/cobra"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/pipeline"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/schemas"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

var actionFlags matchFlags

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Recommend a next action for a match",
	Long:  "Runs the full pipeline and prints the recommended action (interview, request-info, or improve) with its decision-specific payload.",
	RunE:  runAction,
}

func init() {
	registerMatchFlags(actionCmd, &actionFlags)
	rootCmd.AddCommand(actionCmd)
}

type actionOutput struct {
	Decision   types.Decision `json:"decision"`
	Details    map[string]any `json:"details,omitempty"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
}

func runAction(cmd *cobra.Command, _ []string) error {
	opts, log, err := actionFlags.pipelineOptions(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return writeArtifact(schemas.ActionResponse, actionOutput{
		Decision:   res.Decision.Decision,
		Details:    res.Decision.Details,
		Score:      res.Score.Score,
		Confidence: res.Score.Confidence,
	}, actionFlags.output)
}
