package lexicon

import (
	"regexp"
	"strings"
)

// Term banks used for section routing. Matching is substring-based over the
// search-normalized form of a snippet or requirement.

var certificationTerms = []string{
	"certified", "certification", "certificate", "license", "licensed",
	"acrp", "socra", "ccrc", "ccrp", "pmp", "cpa", "bls", "cpr",
}

var courseTerms = []string{
	"course", "coursework", "module", "class", "seminar", "workshop",
	"bootcamp", "udemy", "coursera", "edx", "mooc", "training program",
}

var toolTerms = []string{
	"python", "pandas", "numpy", "scikit-learn", "sklearn", "pytorch",
	"tensorflow", "sql", "excel", "sas", "spss", "matlab", "tableau",
	"powerbi", "docker", "kubernetes", "aws", "azure", "gcp", "git",
	"fastapi", "mlflow", "linux", "java", "javascript", "c++", "redcap",
	"edc", "jupyter",
}

var dutyVerbs = []string{
	"manage", "manages", "managed", "coordinate", "coordinates", "coordinated",
	"conduct", "conducts", "conducted", "perform", "performs", "performed",
	"complete", "completes", "completed", "ensure", "ensures", "ensured",
	"maintain", "maintains", "maintained", "oversee", "oversees", "oversaw",
	"recruit", "recruits", "recruited", "screen", "screens", "screened",
	"collect", "collects", "collected", "monitor", "monitors", "monitored",
	"develop", "develops", "developed", "lead", "leads", "led",
}

var softSkillTerms = []string{
	"communication", "teamwork", "collaboration", "leadership", "organized",
	"organization", "detail-oriented", "attention to detail", "interpersonal",
	"time management", "problem solving", "verbal", "written",
}

// metricPattern recognizes quantified-outcome tokens: percentages, money,
// sample sizes (n=30), counts with k/M magnitude, and units of time.
var metricPattern = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*%|\$\s?\d|n\s*=\s*\d+|\b\d+(\.\d+)?\s*[km]\b|\b\d+\+?\s*(hours?|days?|weeks?|months?|years?|patients?|subjects?|users?|records?)\b)`)

// courseLinePattern matches "Course Title – Institution" style lines.
var courseLinePattern = regexp.MustCompile(`^.{3,80}\s+[–—-]\s+.{3,80}$`)

var institutionWords = []string{
	"university", "institute", "college", "academy", "school", "coursera",
	"udemy", "edx",
}

func containsAny(normalized string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(normalized, NormalizeForSearch(term)) {
			return true
		}
	}
	return false
}

// HasCertificationTerm reports whether s mentions a certification or license.
func HasCertificationTerm(s string) bool {
	return containsAny(NormalizeForSearch(s), certificationTerms)
}

// HasCourseTerm reports whether s mentions coursework or training.
func HasCourseTerm(s string) bool {
	return containsAny(NormalizeForSearch(s), courseTerms)
}

// HasToolTerm reports whether s mentions a concrete tool or technology.
func HasToolTerm(s string) bool {
	return containsAny(NormalizeForSearch(s), toolTerms)
}

// IsSoftSkill reports whether s reads as a soft-skill phrase.
func IsSoftSkill(s string) bool {
	return containsAny(NormalizeForSearch(s), softSkillTerms)
}

// IsDutyLed reports whether s opens with a duty verb, the shape of a
// responsibility line in a job posting ("Manages recruitment of...").
func IsDutyLed(s string) bool {
	tokens := Tokens(s)
	if len(tokens) == 0 {
		return false
	}
	first := tokens[0]
	for _, v := range dutyVerbs {
		if first == v {
			return true
		}
	}
	return false
}

// HasMetric reports whether s already carries a metric-like token.
func HasMetric(s string) bool {
	return metricPattern.MatchString(s)
}

// LooksCourseLine reports whether s has the "title – institution" shape of a
// course or certificate line.
func LooksCourseLine(s string) bool {
	if !courseLinePattern.MatchString(strings.TrimSpace(s)) {
		return false
	}
	return containsAny(NormalizeForSearch(s), institutionWords) || HasCourseTerm(s)
}

// LooksCourseOrCert reports whether a snippet reads as coursework or a
// certification rather than hands-on experience.
func LooksCourseOrCert(s string) bool {
	return HasCourseTerm(s) || HasCertificationTerm(s) || LooksCourseLine(s)
}
