// Package policy maps a match score and its suggestions to a discrete
// recommended action.
package policy

import (
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Decision thresholds. Comparisons use >= so that exact boundary values
// take the higher-confidence branch.
const (
	interviewScore      = 0.75
	interviewConfidence = 0.6
	requestInfoScore    = 0.55
)

// improveHorizonWeeks is the fixed horizon of the generic remediation plan.
const improveHorizonWeeks = 2

// Decide maps (score, confidence, suggestions) to an ActionDecision. Pure
// and deterministic: identical inputs always produce the identical decision.
//
//   - score >= 0.75 and confidence >= 0.6: interview.
//   - else score >= 0.55, or any suggestion surfaces a metric (a
//     quantifiable gap worth probing): request-info.
//   - else: improve, with a fixed-horizon remediation plan.
func Decide(score, confidence float64, suggestions []types.Suggestion) types.ActionDecision {
	if score >= interviewScore && confidence >= interviewConfidence {
		return types.ActionDecision{
			Decision: types.DecisionInterview,
			Details: map[string]any{
				"reason": "high match and confidence",
			},
		}
	}

	if score >= requestInfoScore || anySurfaceMetric(suggestions) {
		return types.ActionDecision{
			Decision: types.DecisionRequestInfo,
			Details: map[string]any{
				"email_draft": "Hi, happy to share portfolio work or code covering the areas you flagged.",
			},
		}
	}

	return types.ActionDecision{
		Decision: types.DecisionImprove,
		Details: map[string]any{
			"plan": map[string]any{
				"weeks":     improveHorizonWeeks,
				"targets":   []string{"top missing skill 1", "top missing skill 2"},
				"artifacts": []string{"small public demo", "short README"},
			},
		},
	}
}

func anySurfaceMetric(suggestions []types.Suggestion) bool {
	for _, s := range suggestions {
		if s.ChangeType == types.ChangeSurfaceMetric {
			return true
		}
	}
	return false
}
