// Package parsing turns raw resume and job text into the structured
// documents the evaluation pipeline consumes.
package parsing

import (
	"regexp"
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/sectionizer"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Caps keep pathological inputs bounded without touching normal resumes.
const (
	maxSummaryLines      = 5
	maxSkills            = 128
	maxExperienceBullets = 256
	maxProjects          = 128
	maxEducationLines    = 64
	maxCourseLines       = 64
)

// skillSplitter breaks a skills line on bullets, commas, semicolons,
// slashes, pipes, tabs and runs of spaces.
var skillSplitter = regexp.MustCompile(`[•,;/|]|\t|\s{2,}`)

// ParseResume builds a ResumeDocument from raw text using the rule-based
// sectionizer.
func ParseResume(raw string) *types.ResumeDocument {
	return ParseResumeWith(raw, nil)
}

// ParseResumeWith is ParseResume with an optional section classifier
// refining the sectionizer's rule labels.
func ParseResumeWith(raw string, clf sectionizer.Classifier) *types.ResumeDocument {
	sections := sectionizer.SectionizeWith(raw, clf)

	doc := &types.ResumeDocument{
		RawText:           raw,
		Summary:           summaryText(sections[sectionizer.LabelSummary]),
		Skills:            extractSkills(sectionLines(sections, sectionizer.LabelSkills), maxSkills),
		ExperienceBullets: truncate(sectionLines(sections, sectionizer.LabelExperience), maxExperienceBullets),
		Projects:          truncate(sectionLines(sections, sectionizer.LabelProjects), maxProjects),
		Education:         truncate(educationLines(sections), maxEducationLines),
		Courses:           truncate(sectionLines(sections, sectionizer.LabelCourses), maxCourseLines),
	}
	return doc
}

func sectionLines(sections sectionizer.Result, label sectionizer.Label) []string {
	sec, ok := sections[label]
	if !ok || sec.Text == "" {
		return nil
	}
	var out []string
	for _, ln := range strings.Split(sec.Text, "\n") {
		ln = strings.TrimSpace(strings.TrimLeft(ln, "-•*– \t"))
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// educationLines merges the certifications region into education: both feed
// the same suggestion routing, and resumes file them interchangeably.
func educationLines(sections sectionizer.Result) []string {
	lines := sectionLines(sections, sectionizer.LabelEducation)
	return append(lines, sectionLines(sections, sectionizer.LabelCertifications)...)
}

func summaryText(sec sectionizer.Section) string {
	if sec.Text == "" {
		return ""
	}
	lines := strings.Split(sec.Text, "\n")
	if len(lines) > maxSummaryLines {
		lines = lines[:maxSummaryLines]
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

// extractSkills splits skill lines into individual tokens, deduplicated
// case-insensitively in first-seen order. Original casing is preserved;
// canonicalization happens later, at match time.
func extractSkills(lines []string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ln := range lines {
		for _, part := range skillSplitter.Split(ln, -1) {
			token := strings.TrimSpace(part)
			if len(token) < 2 || len(token) > 40 {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, token)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

func truncate(lines []string, limit int) []string {
	if len(lines) > limit {
		return lines[:limit]
	}
	return lines
}
