// Package evaluation matches job requirements against resume evidence using
// the synonym lexicon plus raw token-overlap heuristics.
package evaluation

import (
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/lexicon"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/skills"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// ErrNoRequirements is returned when evaluation is asked to run over an
// empty requirement list. The caller must supply requirements; there is no
// default guessing at this layer.
type ErrNoRequirements struct{}

func (e *ErrNoRequirements) Error() string {
	return "no requirements to evaluate"
}

// maxEvidence caps the number of supporting snippets per requirement.
const maxEvidence = 3

// corpusEntry is one searchable resume snippet tagged with its origin.
type corpusEntry struct {
	text       string
	normalized string
	section    types.Section
}

// buildCorpus flattens a resume document into tagged, searchable snippets:
// summary sentence fragments, experience bullets, project lines, education
// lines, course lines and skill tokens, in that order. Corpus order decides
// evidence order.
func buildCorpus(resume *types.ResumeDocument) []corpusEntry {
	var corpus []corpusEntry
	add := func(text string, section types.Section) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		corpus = append(corpus, corpusEntry{
			text:       text,
			normalized: lexicon.NormalizeForSearch(text),
			section:    section,
		})
	}

	for _, fragment := range strings.Split(resume.Summary, ".") {
		add(fragment, types.SectionSummary)
	}
	for _, b := range resume.ExperienceBullets {
		add(b, types.SectionExperience)
	}
	for _, p := range resume.Projects {
		add(p, types.SectionProjects)
	}
	for _, e := range resume.Education {
		add(e, types.SectionEducation)
	}
	for _, c := range resume.Courses {
		add(c, types.SectionCourses)
	}
	for _, s := range resume.Skills {
		add(s, types.SectionSkills)
	}
	return corpus
}

// Evaluate produces one RequirementEvaluation per requirement, order
// preserved. Per requirement: resolve a lexicon entry, search the corpus for
// its synonyms (Met on any hit), then fall back to the requirement's own
// content words (Partial on any hit), else Missing.
func Evaluate(requirements []string, resume *types.ResumeDocument) ([]types.RequirementEvaluation, error) {
	if len(requirements) == 0 {
		return nil, &ErrNoRequirements{}
	}
	if resume == nil {
		resume = &types.ResumeDocument{}
	}
	corpus := buildCorpus(resume)

	results := make([]types.RequirementEvaluation, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, evaluateOne(req, corpus))
	}
	return results, nil
}

func evaluateOne(requirement string, corpus []corpusEntry) types.RequirementEvaluation {
	eval := types.RequirementEvaluation{
		Requirement: requirement,
		Status:      types.StatusMissing,
	}

	if entry, ok := lexicon.Resolve(requirement); ok {
		if evidence := searchSynonyms(entry.Synonyms, corpus); len(evidence) > 0 {
			eval.Status = types.StatusMet
			eval.Evidence = evidence
			return eval
		}
	}

	// Fallback pass: the requirement's own content words against the
	// flattened corpus. Any hit is a weak signal, never a full match.
	terms := lexicon.ContentWords(requirement)
	if evidence := searchTerms(terms, corpus); len(evidence) > 0 {
		eval.Status = types.StatusPartial
		eval.Evidence = evidence
	}
	return eval
}

// searchSynonyms collects up to maxEvidence corpus snippets containing any
// synonym as a substring, in corpus order. Synonyms pass through alias
// expansion first ("crf" → "case report form" sits in the alias table, so
// both spellings are searched).
func searchSynonyms(synonyms []string, corpus []corpusEntry) []string {
	needles := make([]string, 0, len(synonyms)*2)
	seen := make(map[string]bool)
	for _, syn := range synonyms {
		for _, form := range []string{syn, skills.Normalize(syn)} {
			n := lexicon.NormalizeForSearch(form)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			needles = append(needles, n)
		}
	}
	return collect(corpus, func(e corpusEntry) bool {
		for _, n := range needles {
			if strings.Contains(e.normalized, n) {
				return true
			}
		}
		return false
	})
}

// searchTerms collects up to maxEvidence corpus snippets containing any of
// the requirement's content words as a substring.
func searchTerms(terms []string, corpus []corpusEntry) []string {
	if len(terms) == 0 {
		return nil
	}
	return collect(corpus, func(e corpusEntry) bool {
		for _, t := range terms {
			if strings.Contains(e.normalized, t) {
				return true
			}
		}
		return false
	})
}

func collect(corpus []corpusEntry, match func(corpusEntry) bool) []string {
	var out []string
	for _, e := range corpus {
		if match(e) {
			out = append(out, e.text)
			if len(out) == maxEvidence {
				break
			}
		}
	}
	return out
}
