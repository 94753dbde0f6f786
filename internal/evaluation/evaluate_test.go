package evaluation

import (
	"testing"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analystResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Summary:           "Data analyst with clinical research exposure. Focused on reproducible pipelines.",
		Skills:            []string{"Python", "Pandas", "SQL"},
		ExperienceBullets: []string{"Increased throughput by 30% using caching", "Cleaned study datasets with pandas"},
		Projects:          []string{"Enrollment forecasting dashboard in Tableau"},
		Education:         []string{"BS in Biology, State University"},
		Courses:           []string{"Intro to Machine Learning - Coursera"},
	}
}

func TestEvaluate_EmptyRequirements(t *testing.T) {
	_, err := Evaluate(nil, analystResume())
	require.Error(t, err)
	var noReqs *ErrNoRequirements
	assert.ErrorAs(t, err, &noReqs)
}

func TestEvaluate_OrderPreserved(t *testing.T) {
	reqs := []string{
		"Experience with Python and pandas",
		"Fluent in Esperanto",
		"Proficiency in SQL and relational databases",
	}
	evals, err := Evaluate(reqs, analystResume())
	require.NoError(t, err)
	require.Len(t, evals, 3)
	for i, ev := range evals {
		assert.Equal(t, reqs[i], ev.Requirement)
	}
}

func TestEvaluate_MetViaSynonyms(t *testing.T) {
	// Scenario: "Experience with Python and pandas" against skills
	// containing Python and Pandas must be Met with matching evidence.
	evals, err := Evaluate([]string{"Experience with Python and pandas"}, analystResume())
	require.NoError(t, err)
	ev := evals[0]
	assert.Equal(t, types.StatusMet, ev.Status)
	require.NotEmpty(t, ev.Evidence)
	joined := ""
	for _, e := range ev.Evidence {
		joined += e + "\n"
	}
	assert.Regexp(t, "(?i)(python|pandas)", joined)
}

func TestEvaluate_MissingHasNoEvidence(t *testing.T) {
	// Scenario: a duty phrase with no matching resume content is Missing
	// with empty evidence.
	evals, err := Evaluate(
		[]string{"Manages recruitment and enrollment of research subjects"},
		&types.ResumeDocument{Skills: []string{"Photoshop"}},
	)
	require.NoError(t, err)
	assert.Equal(t, types.StatusMissing, evals[0].Status)
	assert.Empty(t, evals[0].Evidence)
}

func TestEvaluate_PartialViaContentWords(t *testing.T) {
	// No lexicon entry matches, but a content word does: weak hit, Partial.
	resume := &types.ResumeDocument{
		ExperienceBullets: []string{"Maintained caching layer for internal APIs"},
	}
	evals, err := Evaluate([]string{"Optimize request caching infrastructure"}, resume)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPartial, evals[0].Status)
	assert.NotEmpty(t, evals[0].Evidence)
}

func TestEvaluate_StatusEvidenceInvariant(t *testing.T) {
	reqs := []string{
		"Experience with Python and pandas",
		"Manages recruitment and enrollment of research subjects",
		"Experience building data visualizations and dashboards",
		"Fluent in Esperanto",
	}
	evals, err := Evaluate(reqs, analystResume())
	require.NoError(t, err)
	for _, ev := range evals {
		switch ev.Status {
		case types.StatusMet:
			assert.NotEmpty(t, ev.Evidence, "Met requires evidence: %s", ev.Requirement)
		case types.StatusMissing:
			assert.Empty(t, ev.Evidence, "Missing forbids evidence: %s", ev.Requirement)
		}
		assert.LessOrEqual(t, len(ev.Evidence), 3)
	}
}

func TestEvaluate_EvidenceInCorpusOrder(t *testing.T) {
	resume := &types.ResumeDocument{
		Summary:           "Pandas user",
		ExperienceBullets: []string{"Wrangled data with pandas"},
		Skills:            []string{"pandas"},
	}
	evals, err := Evaluate([]string{"Experience with Python and pandas"}, resume)
	require.NoError(t, err)
	require.Len(t, evals[0].Evidence, 3)
	// Summary fragments come before experience bullets, which come before
	// skill tokens.
	assert.Equal(t, "Pandas user", evals[0].Evidence[0])
	assert.Equal(t, "Wrangled data with pandas", evals[0].Evidence[1])
	assert.Equal(t, "pandas", evals[0].Evidence[2])
}

func TestEvaluate_Deterministic(t *testing.T) {
	reqs := []string{
		"Experience with Python and pandas",
		"Ensures compliance with good clinical practice",
	}
	first, err := Evaluate(reqs, analystResume())
	require.NoError(t, err)
	second, err := Evaluate(reqs, analystResume())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
