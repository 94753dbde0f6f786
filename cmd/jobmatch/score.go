package main

import (
	"github.com/spf13/cobra"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/pipeline"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/schemas"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

var scoreFlags matchFlags

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job's requirements",
	Long:  "Evaluates each requirement against the resume and prints the per-requirement verdicts plus the aggregate score and confidence as JSON.",
	RunE:  runScore,
}

func init() {
	registerMatchFlags(scoreCmd, &scoreFlags)
	rootCmd.AddCommand(scoreCmd)
}

type scoreOutput struct {
	Score       float64                       `json:"score"`
	Confidence  float64                       `json:"confidence"`
	Evaluations []types.RequirementEvaluation `json:"evaluations"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	opts, log, err := scoreFlags.pipelineOptions(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return writeArtifact(schemas.ScoreResponse, scoreOutput{
		Score:       res.Score.Score,
		Confidence:  res.Score.Confidence,
		Evaluations: res.Evaluations,
	}, scoreFlags.output)
}
