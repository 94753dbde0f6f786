// Package pipeline provides the high-level orchestration from raw resume
// and job sources to a decision.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/classifier"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/counterfactual"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/evaluation"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/ingestion"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/observability"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/parsing"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/policy"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/scoring"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/sectionizer"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Options holds configuration for running the pipeline. Inline text, when
// set, takes precedence over the corresponding source.
type Options struct {
	ResumeSource string                // Path to resume file
	ResumeText   string                // Inline resume text
	Resume       *types.ResumeDocument // Pre-structured resume, skips parsing
	JobSource    string // Path or URL of job posting
	JobText      string // Inline job posting text
	JobTitle     string // Explicit job title
	Requirements []string

	APIKey string // Gemini key for the optional section classifier
	Model  string // Gemini model override

	Logger  *zap.Logger
	Printer *observability.Printer // Verbose output; nil disables
}

// Result carries every intermediate and final artifact of one run.
type Result struct {
	RunID       string
	Resume      *types.ResumeDocument
	Job         *types.Job
	Evaluations []types.RequirementEvaluation
	Score       types.MatchScore
	Sections    map[types.Section][]types.Suggestion
	Suggestions []types.Suggestion
	Decision    types.ActionDecision
}

// Run executes ingest, parse, evaluate, score, suggest, and decide.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.NewString()
	log.Info("pipeline started", zap.String("run_id", runID))

	resumeText, jobText, err := ingestSources(ctx, opts)
	if err != nil {
		return nil, err
	}

	resume := opts.Resume
	if resume == nil {
		var clf sectionizer.Classifier
		if gem, err := classifier.New(ctx, opts.APIKey, opts.Model); err != nil {
			log.Warn("classifier unavailable, continuing rule-only", zap.Error(err))
		} else if gem != nil {
			clf = gem
			defer func() { _ = gem.Close() }()
		}
		resume = parsing.ParseResumeWith(resumeText, clf)
	}
	job := parsing.ParseJob(jobText, parsing.JobOptions{
		Title:        opts.JobTitle,
		Requirements: opts.Requirements,
	})
	log.Debug("parsed inputs",
		zap.String("run_id", runID),
		zap.Int("requirements", len(job.Requirements)),
		zap.Int("skills", len(resume.Skills)))

	evals, err := evaluation.Evaluate(job.Requirements, resume)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}
	if opts.Printer != nil {
		opts.Printer.PrintEvaluations(evals)
	}

	score := scoring.Aggregate(evals)
	if opts.Printer != nil {
		opts.Printer.PrintScore(score)
	}

	sections, flat := counterfactual.Generate(evals, resume)
	if opts.Printer != nil {
		opts.Printer.PrintSuggestions(sections)
	}

	decision := policy.Decide(score.Score, score.Confidence, flat)
	if opts.Printer != nil {
		opts.Printer.PrintDecision(decision)
	}

	log.Info("pipeline finished",
		zap.String("run_id", runID),
		zap.Float64("score", score.Score),
		zap.Float64("confidence", score.Confidence),
		zap.String("decision", string(decision.Decision)))

	return &Result{
		RunID:       runID,
		Resume:      resume,
		Job:         job,
		Evaluations: evals,
		Score:       score,
		Sections:    sections,
		Suggestions: flat,
		Decision:    decision,
	}, nil
}

// ingestSources resolves resume and job text, fetching both sources
// concurrently when neither is inline.
func ingestSources(ctx context.Context, opts Options) (string, string, error) {
	resumeText := opts.ResumeText
	jobText := opts.JobText

	g, gctx := errgroup.WithContext(ctx)
	if opts.Resume == nil && resumeText == "" && opts.ResumeSource != "" {
		g.Go(func() error {
			text, err := ingestion.ReadSource(gctx, opts.ResumeSource, nil)
			if err != nil {
				return fmt.Errorf("resume ingestion failed: %w", err)
			}
			resumeText = text
			return nil
		})
	}
	if jobText == "" && opts.JobSource != "" {
		g.Go(func() error {
			text, err := ingestion.ReadSource(gctx, opts.JobSource, nil)
			if err != nil {
				return fmt.Errorf("job ingestion failed: %w", err)
			}
			jobText = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return resumeText, jobText, nil
}
