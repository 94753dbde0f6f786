package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/evaluation"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/observability"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipelineResume = `Data analyst with clinical research exposure.

SKILLS
Python, Pandas, SQL

EXPERIENCE
- Cleaned study datasets with pandas
- Increased reporting throughput by 30% using caching

EDUCATION
BS in Biology, State University`

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run(context.Background(), Options{
		ResumeText:   pipelineResume,
		JobText:      "Data Analyst\n- Python experience required",
		Requirements: []string{"Python", "Proficiency with Tableau"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Evaluations, 2)
	assert.Equal(t, "Python", res.Evaluations[0].Requirement)
	assert.Equal(t, types.StatusMet, res.Evaluations[0].Status)
	assert.Equal(t, types.StatusMissing, res.Evaluations[1].Status)

	// One Met, one Missing: mean of 1.0 and 0.0.
	assert.InDelta(t, 0.5, res.Score.Score, 1e-9)
	assert.NotEmpty(t, res.Suggestions)
	assert.True(t, res.Decision.Decision == types.DecisionInterview ||
		res.Decision.Decision == types.DecisionRequestInfo ||
		res.Decision.Decision == types.DecisionImprove)
}

func TestRun_ExtractsRequirementsFromJobText(t *testing.T) {
	res, err := Run(context.Background(), Options{
		ResumeText: pipelineResume,
		JobText:    "Data Analyst\n- Python experience required\n- Tableau dashboards",
	})
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", res.Job.Title)
	assert.NotEmpty(t, res.Job.Requirements)
}

func TestRun_ConcurrentFileIngestion(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(pipelineResume), 0o644))
	require.NoError(t, os.WriteFile(jobPath, []byte("Analyst\n- Python required here"), 0o644))

	res, err := Run(context.Background(), Options{
		ResumeSource: resumePath,
		JobSource:    jobPath,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Resume.Skills, "Python")
}

func TestRun_NoRequirementsFails(t *testing.T) {
	_, err := Run(context.Background(), Options{
		ResumeText: pipelineResume,
		JobText:    "",
	})

	var noReq *evaluation.ErrNoRequirements
	require.ErrorAs(t, err, &noReq)
}

func TestRun_MissingResumeFileFails(t *testing.T) {
	_, err := Run(context.Background(), Options{
		ResumeSource: filepath.Join(t.TempDir(), "nope.txt"),
		JobText:      "Analyst\n- Python required here",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume ingestion failed")
}

func TestRun_VerbosePrinterWrites(t *testing.T) {
	var buf bytes.Buffer
	_, err := Run(context.Background(), Options{
		ResumeText:   pipelineResume,
		JobText:      "Analyst",
		Requirements: []string{"Python"},
		Printer:      observability.NewPrinter(&buf),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "MATCH SCORE")
}
