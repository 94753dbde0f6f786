package counterfactual

import (
	"testing"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		Summary:           "Data analyst with clinical research exposure.",
		Skills:            []string{"Python", "Pandas", "SQL"},
		ExperienceBullets: []string{"Increased throughput by 30% using caching", "Cleaned study datasets with pandas"},
		Projects:          []string{"Enrollment forecasting dashboard"},
		Education:         []string{"BS in Biology, State University"},
		Courses:           []string{"Intro to Machine Learning - Coursera"},
	}
}

func TestGenerate_SkipsMet(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{Requirement: "Python", Status: types.StatusMet, Evidence: []string{"Python"}},
	}
	_, flat := Generate(evals, baseResume())
	for _, s := range flat {
		assert.NotEqual(t, "Python", s.TargetRequirement)
	}
}

func TestGenerate_MissingDutyPhraseTargetsExperience(t *testing.T) {
	// A verb-led duty phrase with no evidence guesses experience and asks
	// for an aligned bullet.
	evals := []types.RequirementEvaluation{
		{Requirement: "Manages recruitment and enrollment of research subjects", Status: types.StatusMissing},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	s := flat[0]
	assert.Equal(t, types.SectionExperience, s.Section)
	assert.Equal(t, types.ChangePhrasingOrProject, s.ChangeType)
	assert.Empty(t, s.Before)
}

func TestGenerate_PartialWithMetricTightensInsteadOfAsking(t *testing.T) {
	// Evidence already carries a metric: ask for relevance, not numbers.
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Improve data pipeline performance",
			Status:      types.StatusPartial,
			Evidence:    []string{"Increased throughput by 30% using caching"},
		},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	s := flat[0]
	assert.Equal(t, types.ChangeTightenPhrasing, s.ChangeType)
	assert.NotEqual(t, types.ChangeSurfaceMetric, s.ChangeType)
	assert.Equal(t, "Increased throughput by 30% using caching", s.Before)
}

func TestGenerate_PartialWithoutMetricSurfacesMetric(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Maintain analytical datasets",
			Status:      types.StatusPartial,
			Evidence:    []string{"Cleaned study datasets with pandas"},
		},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	assert.Equal(t, types.SectionExperience, flat[0].Section)
	assert.Equal(t, types.ChangeSurfaceMetric, flat[0].ChangeType)
}

func TestGenerate_SummaryMetricEvidenceAlignsSummary(t *testing.T) {
	// The metric rows apply to experience and projects only: a metric in
	// summary-routed evidence still asks for summary alignment.
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Experience supporting patient-facing analytics",
			Status:      types.StatusPartial,
			Evidence:    []string{"Supported 200+ patients across two sites"},
		},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	s := flat[0]
	assert.Equal(t, types.SectionSummary, s.Section)
	assert.Equal(t, types.ChangeSummaryAlignment, s.ChangeType)
}

func TestGenerate_CourseEvidenceNeverAsksForMetric(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Knowledge of machine learning",
			Status:      types.StatusPartial,
			Evidence:    []string{"Intro to Machine Learning - Coursera"},
		},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	assert.Equal(t, types.SectionCourses, flat[0].Section)
	assert.Equal(t, types.ChangeCourseAlignment, flat[0].ChangeType)
}

func TestGenerate_DutyLedWithCourseEvidenceOverride(t *testing.T) {
	// Duty phrase matched only by a certificate line: route to experience
	// and suppress the certificate as "before" so the suggestion does not
	// read as "fix the certificate".
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Coordinates clinical study visits and monitoring",
			Status:      types.StatusPartial,
			Evidence:    []string{"GCP Certification Course - Coursera"},
		},
	}
	_, flat := Generate(evals, baseResume())
	require.NotEmpty(t, flat)
	s := flat[0]
	assert.Equal(t, types.SectionExperience, s.Section)
	assert.Empty(t, s.Before)
	assert.NotEqual(t, types.ChangeCourseAlignment, s.ChangeType)
}

func TestGenerate_NoMetricForCoursesEducationOrSoftSkills(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{Requirement: "CCRC certification", Status: types.StatusMissing},
		{Requirement: "Completed biostatistics coursework", Status: types.StatusMissing},
		{Requirement: "Strong written and verbal communication skills", Status: types.StatusPartial,
			Evidence: []string{"Data analyst with clinical research exposure"}},
		{Requirement: "Knowledge of machine learning", Status: types.StatusPartial,
			Evidence: []string{"Intro to Machine Learning - Coursera"}},
	}
	sectioned, flat := Generate(evals, baseResume())
	for _, s := range flat {
		if s.Section == types.SectionCourses || s.Section == types.SectionEducation {
			assert.NotEqual(t, types.ChangeSurfaceMetric, s.ChangeType, "metric requested for %q", s.TargetRequirement)
		}
	}
	for sec, bucket := range sectioned {
		for _, s := range bucket {
			assert.Equal(t, sec, s.Section)
			assert.True(t, s.Section.Valid())
		}
	}
}

func TestGenerate_TightenSummaryAppendedOnce(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{Requirement: "Proficiency with Tableau", Status: types.StatusMissing},
	}
	sectioned, flat := Generate(evals, baseResume())
	require.Contains(t, sectioned, types.SectionSummary)
	require.Len(t, sectioned[types.SectionSummary], 1)
	assert.Equal(t, types.ChangeTightenSummary, sectioned[types.SectionSummary][0].ChangeType)
	assert.Equal(t, types.ChangeTightenSummary, flat[len(flat)-1].ChangeType)
}

func TestGenerate_NoTightenSummaryWhenSummaryTargeted(t *testing.T) {
	// A suggestion already routed to the summary suppresses the closing
	// tighten_summary pass.
	evals := []types.RequirementEvaluation{
		{
			Requirement: "Team oriented culture fit",
			Status:      types.StatusPartial,
			Evidence:    []string{"Data analyst with clinical research exposure."},
		},
	}
	sectioned, _ := Generate(evals, baseResume())
	for _, s := range sectioned[types.SectionSummary] {
		assert.NotEqual(t, types.ChangeTightenSummary, s.ChangeType)
	}
}

func TestGenerate_NoTightenSummaryWithoutSummary(t *testing.T) {
	resume := baseResume()
	resume.Summary = ""
	evals := []types.RequirementEvaluation{
		{Requirement: "Proficiency with Tableau", Status: types.StatusMissing},
	}
	sectioned, _ := Generate(evals, resume)
	assert.NotContains(t, sectioned, types.SectionSummary)
}

func TestGenerate_Deterministic(t *testing.T) {
	evals := []types.RequirementEvaluation{
		{Requirement: "Proficiency with Tableau", Status: types.StatusMissing},
		{Requirement: "Maintain analytical datasets", Status: types.StatusPartial,
			Evidence: []string{"Cleaned study datasets with pandas"}},
	}
	s1, f1 := Generate(evals, baseResume())
	s2, f2 := Generate(evals, baseResume())
	assert.Equal(t, s1, s2)
	assert.Equal(t, f1, f2)
}
