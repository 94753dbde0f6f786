// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEvaluations outputs a per-requirement breakdown of statuses and
// their first evidence snippet.
func (p *Printer) PrintEvaluations(evals []types.RequirementEvaluation) {
	if len(evals) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Requirements evaluated: %d\n\n", len(evals)))

	count := min(len(evals), maxItemsToShow)
	for i := 0; i < count; i++ {
		ev := evals[i]
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(ev.Status)), ev.Requirement))
		if len(ev.Evidence) > 0 {
			sb.WriteString(fmt.Sprintf("    evidence: %s\n", ev.Evidence[0]))
		}
	}
	if len(evals) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(evals)-maxItemsToShow))
	}

	p.printBox("REQUIREMENT EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the aggregate match score and confidence.
func (p *Printer) PrintScore(score types.MatchScore) {
	content := fmt.Sprintf("Score:      %.2f\nConfidence: %.2f", score.Score, score.Confidence)
	p.printBox("MATCH SCORE", content)
}

// PrintSuggestions outputs the suggestion list grouped by target section.
func (p *Printer) PrintSuggestions(sectioned map[types.Section][]types.Suggestion) {
	if len(sectioned) == 0 {
		return
	}

	var sb strings.Builder
	for _, sec := range types.CanonicalSections {
		bucket := sectioned[sec]
		if len(bucket) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(string(sec))))
		count := min(len(bucket), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := bucket[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", s.TargetRequirement, s.ChangeType))
		}
		if len(bucket) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bucket)-maxItemsToShow))
		}
	}

	p.printBox("SUGGESTED EDITS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the recommended action.
func (p *Printer) PrintDecision(decision types.ActionDecision) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decision: %s\n", decision.Decision))
	keys := make([]string, 0, len(decision.Details))
	for key := range decision.Details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("  detail: %s\n", key))
	}
	p.printBox("RECOMMENDED ACTION", strings.TrimSuffix(sb.String(), "\n"))
}
