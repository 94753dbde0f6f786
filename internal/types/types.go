// Package types provides type definitions for structured data used throughout the job-match pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section identifies one of the canonical resume regions used for both
// parsing and suggestion routing.
type Section string

// Canonical section names.
const (
	SectionSummary    Section = "summary"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionCourses    Section = "courses"
)

// CanonicalSections lists the six canonical section names in routing order.
var CanonicalSections = []Section{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionCourses,
}

// Valid reports whether s is one of the six canonical section names.
func (s Section) Valid() bool {
	switch s {
	case SectionSummary, SectionSkills, SectionExperience,
		SectionProjects, SectionEducation, SectionCourses:
		return true
	}
	return false
}

// ResumeDocument is the structured view of a resume. It is constructed once
// per request from raw input and never mutated afterwards.
type ResumeDocument struct {
	RawText           string   `json:"raw_text,omitempty"`
	Summary           string   `json:"summary"`
	Skills            []string `json:"skills"`
	ExperienceBullets []string `json:"experience_bullets"`
	Projects          []string `json:"projects"`
	Education         []string `json:"education"`
	Courses           []string `json:"courses"`
}

// IsEmpty reports whether the document carries no usable content at all.
func (r *ResumeDocument) IsEmpty() bool {
	return r == nil || (r.Summary == "" &&
		len(r.Skills) == 0 &&
		len(r.ExperienceBullets) == 0 &&
		len(r.Projects) == 0 &&
		len(r.Education) == 0 &&
		len(r.Courses) == 0)
}

// Job represents a job posting reduced to its stated requirements.
type Job struct {
	Title        string   `json:"title"`
	Requirements []string `json:"requirements"`
	Preferred    []string `json:"preferred,omitempty"`
	RawText      string   `json:"raw_text,omitempty"`
}

// Status is the three-way verdict for a single requirement.
type Status string

// Requirement statuses.
const (
	StatusMet     Status = "Met"
	StatusPartial Status = "Partial"
	StatusMissing Status = "Missing"
)

// RequirementEvaluation is the verdict for one job requirement, with the
// resume snippets that support it. Evidence holds at most three snippets,
// drawn verbatim from the resume corpus in corpus order.
type RequirementEvaluation struct {
	Requirement string   `json:"requirement"`
	Status      Status   `json:"status"`
	Evidence    []string `json:"evidence,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"`
}

// MatchScore is the aggregate over a set of requirement evaluations.
// Both fields are in [0,1], rounded to two decimals.
type MatchScore struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// ChangeType classifies the kind of edit a suggestion proposes.
type ChangeType string

// Suggestion change types.
const (
	ChangeSurfaceMetric     ChangeType = "surface_metric"
	ChangeTightenPhrasing   ChangeType = "tighten_phrasing"
	ChangeCourseAlignment   ChangeType = "course_alignment"
	ChangeSkillAlignment    ChangeType = "skill_alignment"
	ChangePhrasingOrProject ChangeType = "phrasing_or_project"
	ChangeSummaryAlignment  ChangeType = "summary_alignment"
	ChangeTightenSummary    ChangeType = "tighten_summary"
)

// Suggestion is a proposed resume edit that would plausibly change a
// Partial/Missing requirement's status without fabricating experience.
type Suggestion struct {
	TargetRequirement string     `json:"target_requirement"`
	Section           Section    `json:"section"`
	ChangeType        ChangeType `json:"change_type"`
	Before            string     `json:"before,omitempty"`
	After             string     `json:"after"`
	Rationale         string     `json:"rationale"`
}

// Decision is the categorical recommendation produced by the action policy.
type Decision string

// Action decisions.
const (
	DecisionInterview   Decision = "interview"
	DecisionRequestInfo Decision = "request-info"
	DecisionImprove     Decision = "improve"
)

// ActionDecision is the final recommendation plus a decision-specific payload.
type ActionDecision struct {
	Decision Decision       `json:"decision"`
	Details  map[string]any `json:"details,omitempty"`
}
