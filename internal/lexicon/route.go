package lexicon

import (
	"strings"

	"github.com/HamidrezaAliakbari/Job-Match-Copilot/internal/types"
)

// Section routing shared by the evaluator and the counterfactual generator.
// Both must agree on where a piece of evidence lives, so the rules exist in
// exactly one place. Rules are an explicit ordered list evaluated top to
// bottom, first match wins.

type snippetRule struct {
	name  string
	match func(snippet string, resume *types.ResumeDocument) bool
	label types.Section
}

var snippetRules = []snippetRule{
	{
		name: "certification-term",
		match: func(s string, _ *types.ResumeDocument) bool {
			return HasCertificationTerm(s)
		},
		label: types.SectionEducation,
	},
	{
		name: "course-term-or-course-line",
		match: func(s string, _ *types.ResumeDocument) bool {
			return HasCourseTerm(s) || LooksCourseLine(s)
		},
		label: types.SectionCourses,
	},
	{
		name: "verbatim-experience",
		match: func(s string, r *types.ResumeDocument) bool {
			return memberOf(s, r.ExperienceBullets)
		},
		label: types.SectionExperience,
	},
	{
		name: "verbatim-project",
		match: func(s string, r *types.ResumeDocument) bool {
			return memberOf(s, r.Projects)
		},
		label: types.SectionProjects,
	},
	{
		name: "verbatim-education",
		match: func(s string, r *types.ResumeDocument) bool {
			return memberOf(s, r.Education)
		},
		label: types.SectionEducation,
	},
	{
		name: "verbatim-course",
		match: func(s string, r *types.ResumeDocument) bool {
			return memberOf(s, r.Courses)
		},
		label: types.SectionCourses,
	},
	{
		name: "skill-token",
		match: func(s string, r *types.ResumeDocument) bool {
			needle := strings.ToLower(strings.TrimSpace(s))
			for _, sk := range r.Skills {
				if strings.ToLower(strings.TrimSpace(sk)) == needle {
					return true
				}
			}
			return false
		},
		label: types.SectionSkills,
	},
}

func memberOf(s string, lines []string) bool {
	needle := strings.TrimSpace(s)
	for _, ln := range lines {
		if strings.TrimSpace(ln) == needle {
			return true
		}
	}
	return false
}

// SectionForSnippet maps an evidence snippet back to the resume section it
// most plausibly came from. Falls back to the summary when nothing matches.
func SectionForSnippet(snippet string, resume *types.ResumeDocument) types.Section {
	if resume == nil {
		resume = &types.ResumeDocument{}
	}
	for _, rule := range snippetRules {
		if rule.match(snippet, resume) {
			return rule.label
		}
	}
	return types.SectionSummary
}

type requirementRule struct {
	name  string
	match func(requirement string) bool
	label types.Section
}

var requirementRules = []requirementRule{
	{name: "certification-term", match: HasCertificationTerm, label: types.SectionEducation},
	{name: "course-term", match: HasCourseTerm, label: types.SectionCourses},
	{name: "tool-term", match: HasToolTerm, label: types.SectionSkills},
	{name: "duty-led", match: IsDutyLed, label: types.SectionExperience},
}

// SectionForRequirement guesses the resume section a requirement should be
// addressed in when there is no evidence to route by. Defaults to experience:
// an unmatched requirement is most often a missing work activity.
func SectionForRequirement(requirement string) types.Section {
	for _, rule := range requirementRules {
		if rule.match(requirement) {
			return rule.label
		}
	}
	return types.SectionExperience
}
