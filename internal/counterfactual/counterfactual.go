// Package counterfactual turns non-Met requirement evaluations into
// section-targeted, non-fabricating edit suggestions.
//
// The hard rule of this package: no suggestion routed to courses or
// education, and none flagged as a soft skill, ever asks for a metric.
// Quantifying a certificate is nonsense and inviting invented numbers is
// worse; the policy table below is structured so that surface_metric can
// only be produced on the experience/projects path.
package counterfactual

import (
	"fmt"
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/lexicon"
	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Generate builds one suggestion per non-Met evaluation, plus at most one
// closing tighten_summary suggestion. It returns the suggestions bucketed by
// section and as a flat list in evaluation order.
func Generate(evals []types.RequirementEvaluation, resume *types.ResumeDocument) (map[types.Section][]types.Suggestion, []types.Suggestion) {
	if resume == nil {
		resume = &types.ResumeDocument{}
	}

	var flat []types.Suggestion
	for _, ev := range evals {
		if ev.Status == types.StatusMet {
			continue
		}
		flat = append(flat, buildSuggestion(ev, resume))
	}

	sectioned := make(map[types.Section][]types.Suggestion, len(types.CanonicalSections))
	summaryTouched := false
	for _, s := range flat {
		sectioned[s.Section] = append(sectioned[s.Section], s)
		if s.Section == types.SectionSummary {
			summaryTouched = true
		}
	}

	// Close with a summary tightening pass, but only when the resume has a
	// summary and nothing else already landed there.
	if strings.TrimSpace(resume.Summary) != "" && !summaryTouched {
		tighten := types.Suggestion{
			TargetRequirement: "",
			Section:           types.SectionSummary,
			ChangeType:        types.ChangeTightenSummary,
			Before:            resume.Summary,
			After:             "Trim the summary to two lines that mirror the job's top requirements.",
			Rationale:         "A focused summary makes the strongest evidence visible first.",
		}
		sectioned[types.SectionSummary] = append(sectioned[types.SectionSummary], tighten)
		flat = append(flat, tighten)
	}

	return sectioned, flat
}

// buildSuggestion routes one evaluation to a section and applies the policy
// table for its status.
func buildSuggestion(ev types.RequirementEvaluation, resume *types.ResumeDocument) types.Suggestion {
	section, before := routeEvaluation(ev, resume)
	soft := isSoftSkill(ev)

	if ev.Status == types.StatusPartial {
		return partialSuggestion(ev, section, before, soft)
	}
	return missingSuggestion(ev, section, soft)
}

// routeEvaluation determines the origin section for an evaluation and the
// snippet to echo as "before". Evidence routes by snippet; without evidence
// the requirement text itself is classified. A duty-led requirement whose
// best evidence is a course or certificate line is forced back to
// experience, with the course line suppressed: the gap is a missing work
// activity, not a broken certificate entry.
func routeEvaluation(ev types.RequirementEvaluation, resume *types.ResumeDocument) (types.Section, string) {
	if len(ev.Evidence) == 0 {
		return lexicon.SectionForRequirement(ev.Requirement), ""
	}

	strongest := ev.Evidence[0]
	if lexicon.IsDutyLed(ev.Requirement) && lexicon.LooksCourseOrCert(strongest) {
		return types.SectionExperience, ""
	}
	return lexicon.SectionForSnippet(strongest, resume), strongest
}

func isSoftSkill(ev types.RequirementEvaluation) bool {
	if lexicon.IsSoftSkill(ev.Requirement) {
		return true
	}
	return len(ev.Evidence) > 0 && lexicon.IsSoftSkill(ev.Evidence[0])
}

// partialSuggestion applies the Partial row of the policy table.
func partialSuggestion(ev types.RequirementEvaluation, section types.Section, before string, soft bool) types.Suggestion {
	s := types.Suggestion{
		TargetRequirement: ev.Requirement,
		Section:           section,
		Before:            before,
	}

	switch {
	case section == types.SectionCourses || section == types.SectionEducation:
		s.ChangeType = types.ChangeCourseAlignment
		s.After = fmt.Sprintf("Rename or annotate the entry so it uses the posting's wording for %q.", ev.Requirement)
		s.Rationale = "The coursework is close; matching terminology lets a reviewer connect it."
	case soft:
		s.ChangeType = types.ChangeTightenPhrasing
		s.After = fmt.Sprintf("Rephrase the line to show %q in a concrete situation.", ev.Requirement)
		s.Rationale = "Soft skills read stronger as demonstrated behavior than as claims."
	case section == types.SectionSkills:
		s.ChangeType = types.ChangeSkillAlignment
		s.After = fmt.Sprintf("List the exact term from %q next to the related skill you already have.", ev.Requirement)
		s.Rationale = "Screeners match on the posting's exact terms."
	case (section == types.SectionExperience || section == types.SectionProjects) && lexicon.HasMetric(before):
		// A metric is already there; asking for another buries the signal.
		s.ChangeType = types.ChangeTightenPhrasing
		s.After = fmt.Sprintf("Keep the number, tighten the line so its link to %q is explicit.", ev.Requirement)
		s.Rationale = "The outcome is quantified; relevance, not magnitude, is the gap."
	case section == types.SectionExperience || section == types.SectionProjects:
		s.ChangeType = types.ChangeSurfaceMetric
		s.After = fmt.Sprintf("Add a quantified outcome (volume, %%, time saved) to the line supporting %q.", ev.Requirement)
		s.Rationale = "A measurable result converts a weak hit into direct evidence."
	default:
		s.ChangeType = types.ChangeSummaryAlignment
		s.After = fmt.Sprintf("Work the language of %q into the summary line it echoes.", ev.Requirement)
		s.Rationale = "The summary is the only place this requirement surfaces; align it."
	}
	return s
}

// missingSuggestion applies the Missing row of the policy table. There is
// no evidence to echo, so Before stays empty.
func missingSuggestion(ev types.RequirementEvaluation, section types.Section, soft bool) types.Suggestion {
	s := types.Suggestion{
		TargetRequirement: ev.Requirement,
		Section:           section,
	}

	switch {
	case section == types.SectionCourses || section == types.SectionEducation:
		s.ChangeType = types.ChangeCourseAlignment
		s.After = fmt.Sprintf("Add a real course or certificate covering %q, if you have completed one.", ev.Requirement)
		s.Rationale = "Only verifiable coursework closes this gap; never invent an entry."
	case soft || section == types.SectionSkills:
		s.ChangeType = types.ChangeSkillAlignment
		s.After = fmt.Sprintf("Add the exact term from %q to the skills list, only if it is true.", ev.Requirement)
		s.Rationale = "An honest exact-term entry is enough for keyword screens."
	case section == types.SectionExperience || section == types.SectionProjects:
		s.ChangeType = types.ChangePhrasingOrProject
		s.After = fmt.Sprintf("Add one bullet aligned to %q naming the tools and scale involved, or link a small demonstrable project.", ev.Requirement)
		s.Rationale = "Align terminology or provide a verifiable artifact; no fabrication."
	default:
		s.ChangeType = types.ChangeSummaryAlignment
		s.After = fmt.Sprintf("Optionally add a one-line nod to %q in the summary.", ev.Requirement)
		s.Rationale = "A summary mention signals awareness even without deep evidence."
	}
	return s
}
