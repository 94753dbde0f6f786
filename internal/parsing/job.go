package parsing

import (
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// maxExtractedRequirements caps requirement extraction from free text; a
// posting's first ten substantial lines carry its real asks.
const maxExtractedRequirements = 10

// maxTitleLen is the longest first line still treated as the job title.
const maxTitleLen = 60

// defaultJobTitle is used when no plausible title line is found.
const defaultJobTitle = "Job"

// JobOptions carries explicit overrides for job parsing. Explicit
// requirements always win over extraction from the raw text.
type JobOptions struct {
	Title        string
	Requirements []string
	Preferred    []string
}

// ParseJob builds a Job from raw posting text. When opts supplies explicit
// requirements they are used as-is; otherwise requirement lines are
// extracted from the text (bullets stripped, short fragments dropped).
func ParseJob(raw string, opts JobOptions) *types.Job {
	job := &types.Job{
		Title:        opts.Title,
		Requirements: compact(opts.Requirements),
		Preferred:    compact(opts.Preferred),
		RawText:      raw,
	}

	lines := nonEmptyLines(raw)

	if job.Title == "" {
		job.Title = titleFrom(lines)
	}

	if len(job.Requirements) == 0 {
		job.Requirements = extractRequirements(lines)
	}
	return job
}

func nonEmptyLines(raw string) []string {
	var out []string
	for _, ln := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}

func titleFrom(lines []string) string {
	if len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if len(first) > 0 && len(first) <= maxTitleLen && !strings.HasPrefix(first, "-") {
			return first
		}
	}
	return defaultJobTitle
}

func extractRequirements(lines []string) []string {
	var out []string
	for _, ln := range lines {
		cleaned := strings.TrimSpace(strings.Trim(ln, "-•* \t"))
		if len(cleaned) <= 6 {
			continue
		}
		out = append(out, cleaned)
		if len(out) == maxExtractedRequirements {
			break
		}
	}
	return out
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
