package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/config"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/logger"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/observability"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/pipeline"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/schemas"
)

// matchFlags are the input flags shared by score, suggest and action.
type matchFlags struct {
	configPath   string
	resume       string
	job          string
	jobURL       string
	requirements []string
	title        string
	apiKey       string
	model        string
	output       string
	verbose      bool
	jsonLogs     bool
}

// registerMatchFlags wires the shared flag set onto a command.
func registerMatchFlags(cmd *cobra.Command, f *matchFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.resume, "resume", "r", "", "Path to resume text file")
	cmd.Flags().StringVarP(&f.job, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	cmd.Flags().StringVar(&f.jobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	cmd.Flags().StringSliceVar(&f.requirements, "requirement", nil, "Explicit requirement (repeatable, overrides extraction from job text)")
	cmd.Flags().StringVar(&f.title, "title", "", "Job title override")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Gemini API key for the section classifier (optional, defaults to GEMINI_API_KEY env var)")
	cmd.Flags().StringVar(&f.model, "model", "", "Gemini model override")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the JSON result to a file instead of stdout")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed step output")
	cmd.Flags().BoolVar(&f.jsonLogs, "json-logs", false, "Structured JSON log output")
}

// resolveConfig loads the config file if given and applies CLI overrides.
// Flags explicitly set on the command line take priority.
func (f *matchFlags) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = f.resume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = f.job
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = f.jobURL
	}
	if cmd.Flags().Changed("requirement") {
		cfg.Requirements = f.requirements
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = f.jsonLogs
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (or 'resume' in the config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" && len(cfg.Requirements) == 0 {
		return cfg, fmt.Errorf("one of --job, --job-url or --requirement is required")
	}
	return cfg, nil
}

// pipelineOptions builds pipeline options and a logger from resolved config.
func (f *matchFlags) pipelineOptions(cmd *cobra.Command) (pipeline.Options, *zap.Logger, error) {
	cfg, err := f.resolveConfig(cmd)
	if err != nil {
		return pipeline.Options{}, nil, err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return pipeline.Options{}, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	jobSource := cfg.Job
	if jobSource == "" {
		jobSource = cfg.JobURL
	}

	opts := pipeline.Options{
		ResumeSource: cfg.Resume,
		JobSource:    jobSource,
		JobTitle:     f.title,
		Requirements: cfg.Requirements,
		APIKey:       cfg.APIKeyFromEnv(),
		Model:        cfg.Model,
		Logger:       log,
	}
	if cfg.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}
	return opts, log, nil
}

// writeArtifact marshals v, validates it against the named schema, and
// writes it to path, or to stdout when path is empty.
func writeArtifact(schemaName string, v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := schemas.ValidateDocument(schemaName, data); err != nil {
		return fmt.Errorf("result failed schema validation: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
