package main

import (
	"github.com/spf13/cobra"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/pipeline"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/schemas"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

var suggestFlags matchFlags

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest resume edits for unmet requirements",
	Long:  "Generates section-targeted, non-fabricating edit suggestions for every requirement that is not fully met, grouped by resume section.",
	RunE:  runSuggest,
}

func init() {
	registerMatchFlags(suggestCmd, &suggestFlags)
	rootCmd.AddCommand(suggestCmd)
}

type suggestOutput struct {
	Sections    map[types.Section][]types.Suggestion `json:"sections,omitempty"`
	Suggestions []types.Suggestion                   `json:"suggestions"`
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	opts, log, err := suggestFlags.pipelineOptions(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	suggestions := res.Suggestions
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}
	return writeArtifact(schemas.CounterfactualResponse, suggestOutput{
		Sections:    res.Sections,
		Suggestions: suggestions,
	}, suggestFlags.output)
}
