// Package scoring reduces per-requirement evaluations to a single
// score/confidence pair.
package scoring

import (
	"math"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Status weights for the mean score.
const (
	metWeight     = 1.0
	partialWeight = 0.5
	missingWeight = 0.0
)

// Confidence parameters. Confidence tracks evidence density, not
// correctness: a low-score, high-coverage resume reads "clearly assessed,
// not a fit", which is a different signal from "not enough data to tell".
const (
	confidenceBase    = 0.55
	confidenceSlope   = 0.4
	confidenceFloor   = 0.4
	confidenceCeiling = 0.99
	// emptyConfidence is the default when there is nothing to assess at
	// all: true ambiguity, distinct from the general floor.
	emptyConfidence = 0.5
)

// Aggregate reduces evaluations to a MatchScore. The score is the mean of
// the status weights; confidence scales with coverage, the fraction of
// requirements with at least Partial evidence. Both are rounded to two
// decimals. An empty input yields score 0.0 and confidence 0.5.
func Aggregate(evals []types.RequirementEvaluation) types.MatchScore {
	if len(evals) == 0 {
		return types.MatchScore{Score: 0.0, Confidence: emptyConfidence}
	}

	total := 0.0
	covered := 0
	for _, ev := range evals {
		switch ev.Status {
		case types.StatusMet:
			total += metWeight
			covered++
		case types.StatusPartial:
			total += partialWeight
			covered++
		default:
			total += missingWeight
		}
	}

	coverage := float64(covered) / float64(len(evals))
	confidence := confidenceBase + confidenceSlope*coverage
	confidence = math.Min(confidenceCeiling, math.Max(confidenceFloor, confidence))

	return types.MatchScore{
		Score:      round2(total / float64(len(evals))),
		Confidence: round2(confidence),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
