// Package sectionizer splits raw resume text into labeled sections using
// header detection and line-level heuristics. An optional external
// classifier may refine the rule labels; when it is absent or fails, the
// rule labels are authoritative.
package sectionizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Label is an internal section label produced by the sectionizer. The set is
// wider than the six canonical resume sections because real resumes carry
// regions (honors, publications, contact blocks) that the pipeline folds
// away later.
type Label string

// Sectionizer labels.
const (
	LabelSummary        Label = "SUMMARY"
	LabelSkills         Label = "SKILLS"
	LabelExperience     Label = "EXPERIENCE"
	LabelProjects       Label = "PROJECTS"
	LabelEducation      Label = "EDUCATION"
	LabelCourses        Label = "COURSES"
	LabelCertifications Label = "CERTIFICATIONS"
	LabelPublications   Label = "PUBLICATIONS"
	LabelHonors         Label = "HONORS"
	LabelVolunteer      Label = "VOLUNTEER"
	LabelAffiliations   Label = "AFFILIATIONS"
	LabelContact        Label = "CONTACT"
	LabelMisc           Label = "MISC"
)

// headerVocabulary maps each label to the header phrasings that select it.
var headerVocabulary = map[Label][]string{
	LabelSummary: {"summary", "professional summary", "profile", "about me", "objective"},
	LabelSkills:  {"skills", "technical skills", "core skills", "tooling", "technologies"},
	LabelExperience: {
		"experience", "professional experience", "work experience", "employment",
		"work history", "relevant experience", "industry experience",
	},
	LabelProjects: {"projects", "selected projects", "academic projects", "personal projects"},
	LabelEducation: {
		"education", "academic background", "academics", "education & training",
		"education and training",
	},
	LabelCourses:        {"courses", "relevant coursework", "coursework"},
	LabelCertifications: {"certifications", "certs", "licenses", "certification"},
	LabelPublications:   {"publications", "papers", "articles"},
	LabelHonors:         {"honors", "awards", "honors & awards", "awards & honors"},
	LabelVolunteer:      {"volunteer", "volunteering", "community service"},
	LabelAffiliations:   {"affiliations", "memberships", "professional memberships"},
	LabelContact:        {"contact", "contact information", "personal details"},
	LabelMisc:           {"misc", "additional", "other", "additional information"},
}

// headerIndex is the flattened alias→label lookup built from headerVocabulary.
var headerIndex = func() map[string]Label {
	idx := make(map[string]Label)
	for label, aliases := range headerVocabulary {
		for _, a := range aliases {
			idx[a] = label
		}
	}
	return idx
}()

var (
	bulletPattern        = regexp.MustCompile(`^\s*([-*•–]|(\d+[.)]))\s+`)
	headerLinePattern    = regexp.MustCompile(`^\s*([A-Z][A-Za-z0-9 &/+\-]|[A-Z]{3,})(:)?\s*$`)
	headerKeywordPattern = regexp.MustCompile(`(?i)(education|experience|skills|summary|projects?|course|certification|publication|honors?|awards?|volunteer|affiliations?)`)
	dateRangePattern     = regexp.MustCompile(`(?i)((19|20)\d{2})(\s*[–—-]\s*| to )((19|20)\d{2}|present|current)`)
	degreePattern        = regexp.MustCompile(`(?i)\b(B\.?S\.?c?|M\.?S\.?c?|Ph\.?D\.?|MBA|MD|BA|MA|MEng|BEng|MPhil|DPhil)\b`)
	universityPattern    = regexp.MustCompile(`(?i)(university|institute|college|polytechnic|school of|faculty of)`)
	gpaPattern           = regexp.MustCompile(`(?i)\bGPA[:\s]*\d\.\d{1,2}`)
	coursePattern        = regexp.MustCompile(`(?i)\b(course|coursework|module|class|laboratory|lab|seminar)\b`)
	techTermPattern      = regexp.MustCompile(`(?i)\b(python|pytorch|tensorflow|fastapi|docker|aws|qdrant|mlflow|nlp|sql|excel|sas|matlab|java|c\+\+|javascript|tableau|powerbi|git|kubernetes|linux|pandas|numpy|redcap)\b`)
	jobTitlePattern      = regexp.MustCompile(`(?i)\b(intern|engineer|analyst|manager|research|coordinator|scientist|developer|assistant)\b`)
	projectPattern       = regexp.MustCompile(`(?i)\bprojects?\b`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
	nonHeaderChars       = regexp.MustCompile(`[^a-z0-9 &/+\-]`)
)

// maxHeaderLen is the longest line still considered a candidate header.
const maxHeaderLen = 64

// line is one non-empty resume line with its heuristic features.
type line struct {
	text        string
	idx         int
	isBullet    bool
	looksHeader bool
}

// Section is one labeled region of the resume.
type Section struct {
	Lines      []int   `json:"lines"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Result maps each detected label to its section content.
type Result map[Label]Section

// Classifier is an optional external model that may override rule labels.
// Predict receives the line texts and the rule-assigned labels and returns
// one label per line. Any error degrades gracefully to the rule labels.
type Classifier interface {
	Predict(lines []string, ruleLabels []string) ([]string, error)
}

// Sectionize splits raw resume text into labeled sections using rule-based
// heuristics only.
func Sectionize(text string) Result {
	return SectionizeWith(text, nil)
}

// SectionizeWith is Sectionize with an optional classifier refining the rule
// labels. A nil classifier, a classifier error, or an out-of-vocabulary
// prediction all fall back to the rule label for that line.
func SectionizeWith(text string, clf Classifier) Result {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := splitLines(text)
	if len(lines) == 0 {
		return Result{}
	}

	labels := assignLabels(lines)
	labels = applyClassifier(lines, labels, clf)

	sections := segment(lines, labels)
	demoteLateSummary(sections)
	splitCoursesFromExperience(sections)
	return sections
}

func normalizeSpace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

func splitLines(text string) []line {
	var out []line
	for i, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		out = append(out, line{
			text:        normalizeSpace(raw),
			idx:         i,
			isBullet:    bulletPattern.MatchString(raw),
			looksHeader: headerLinePattern.MatchString(raw) || headerKeywordPattern.MatchString(raw),
		})
	}
	return out
}

// maxFallbackHeaderWords caps the keyword fallback: only very short lines
// may become headers on a keyword alone, so content lines that merely
// mention "coursework" or "projects" are not swallowed.
const maxFallbackHeaderWords = 3

// headerToLabel resolves a header-looking line to its label: exact alias
// match against the header vocabulary first, keyword fallback second.
func headerToLabel(headerText string) (Label, bool) {
	key := strings.ToLower(strings.Trim(normalizeSpace(headerText), ":"))
	key = nonHeaderChars.ReplaceAllString(key, "")
	key = strings.TrimSpace(key)
	if label, ok := headerIndex[key]; ok {
		return label, true
	}
	if len(strings.Fields(key)) > maxFallbackHeaderWords {
		return "", false
	}
	m := headerKeywordPattern.FindStringSubmatch(headerText)
	if m == nil {
		return "", false
	}
	kw := strings.ToLower(m[1])
	for _, label := range vocabularyOrder {
		for _, alias := range headerVocabulary[label] {
			if strings.Contains(alias, kw) {
				return label, true
			}
		}
	}
	return "", false
}

// vocabularyOrder fixes the iteration order of the keyword fallback so that
// resolution is deterministic.
var vocabularyOrder = func() []Label {
	labels := make([]Label, 0, len(headerVocabulary))
	for label := range headerVocabulary {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}()

// contentRule is one heuristic for labeling a non-header line. Rules are
// evaluated in declaration order, first match wins; precedence lives in this
// slice rather than in nested conditionals.
type contentRule struct {
	name  string
	match func(ln line) bool
	label Label
}

var contentRules = []contentRule{
	{
		name: "education-signals",
		match: func(ln line) bool {
			return degreePattern.MatchString(ln.text) ||
				universityPattern.MatchString(ln.text) ||
				gpaPattern.MatchString(ln.text)
		},
		label: LabelEducation,
	},
	{
		name: "experience-signals",
		match: func(ln line) bool {
			return dateRangePattern.MatchString(ln.text) || jobTitlePattern.MatchString(ln.text)
		},
		label: LabelExperience,
	},
	{
		name:  "course-keyword",
		match: func(ln line) bool { return coursePattern.MatchString(ln.text) },
		label: LabelCourses,
	},
	{
		name: "dense-tech-terms",
		match: func(ln line) bool {
			return techTermPattern.MatchString(ln.text) &&
				(strings.Contains(ln.text, ",") || ln.isBullet || len(ln.text) <= 80)
		},
		label: LabelSkills,
	},
	{
		name:  "project-keyword",
		match: func(ln line) bool { return projectPattern.MatchString(ln.text) },
		label: LabelProjects,
	},
}

// earlySummaryWindow is the line index below which pre-header prose defaults
// to the summary.
const earlySummaryWindow = 8

// assignLabels runs the rule pass: explicit headers switch the running
// label, everything else goes through the ordered content rules and finally
// inherits the running label.
func assignLabels(lines []line) []Label {
	labels := make([]Label, 0, len(lines))
	current := LabelSummary
	seenHeader := false

	for _, ln := range lines {
		if ln.looksHeader && len(ln.text) <= maxHeaderLen {
			if label, ok := headerToLabel(ln.text); ok {
				current = label
				seenHeader = true
				labels = append(labels, label)
				continue
			}
		}

		if !seenHeader && ln.idx <= earlySummaryWindow && !ln.isBullet {
			labels = append(labels, LabelSummary)
			continue
		}

		labeled := false
		for _, rule := range contentRules {
			if rule.match(ln) {
				labels = append(labels, rule.label)
				labeled = true
				break
			}
		}
		if !labeled {
			labels = append(labels, current)
		}
	}
	return labels
}

// applyClassifier lets the optional classifier override the rule labels.
// Predictions outside the label vocabulary keep the rule label; any error
// keeps all rule labels.
func applyClassifier(lines []line, ruleLabels []Label, clf Classifier) []Label {
	if clf == nil {
		return ruleLabels
	}
	texts := make([]string, len(lines))
	rules := make([]string, len(ruleLabels))
	for i := range lines {
		texts[i] = lines[i].text
		rules[i] = string(ruleLabels[i])
	}
	preds, err := clf.Predict(texts, rules)
	if err != nil || len(preds) != len(ruleLabels) {
		return ruleLabels
	}
	out := make([]Label, len(ruleLabels))
	for i, p := range preds {
		if _, known := headerVocabulary[Label(p)]; known {
			out[i] = Label(p)
		} else {
			out[i] = ruleLabels[i]
		}
	}
	return out
}

// segment groups labeled lines into sections and computes per-section
// confidence: a base of 0.4 plus up to 0.6 scaled by line count, boosted
// when a section carries its strongest signals.
func segment(lines []line, labels []Label) Result {
	type bucket struct {
		lines []line
	}
	buckets := make(map[Label]*bucket)
	for i, ln := range lines {
		// Header lines switched the label; keep only content lines.
		if ln.looksHeader && len(ln.text) <= maxHeaderLen {
			if _, ok := headerToLabel(ln.text); ok {
				continue
			}
		}
		b := buckets[labels[i]]
		if b == nil {
			b = &bucket{}
			buckets[labels[i]] = b
		}
		b.lines = append(b.lines, ln)
	}

	sections := make(Result, len(buckets))
	for label, b := range buckets {
		confidence := 0.4 + math.Min(0.6, 0.02*float64(len(b.lines)))
		switch label {
		case LabelEducation:
			for _, ln := range b.lines {
				if degreePattern.MatchString(ln.text) || universityPattern.MatchString(ln.text) {
					confidence = math.Max(confidence, 0.75)
					break
				}
			}
		case LabelSkills:
			for _, ln := range b.lines {
				if strings.Contains(ln.text, ",") || techTermPattern.MatchString(ln.text) {
					confidence = math.Max(confidence, 0.7)
					break
				}
			}
		case LabelExperience:
			for _, ln := range b.lines {
				if dateRangePattern.MatchString(ln.text) {
					confidence = math.Max(confidence, 0.7)
					break
				}
			}
		}

		idxs := make([]int, len(b.lines))
		texts := make([]string, len(b.lines))
		for i, ln := range b.lines {
			idxs[i] = ln.idx
			texts[i] = ln.text
		}
		sections[label] = Section{
			Lines:      idxs,
			Text:       strings.TrimSpace(strings.Join(texts, "\n")),
			Confidence: round2(confidence),
		}
	}
	return sections
}

// lateSummaryThreshold is the line index past which a low-confidence summary
// is assumed to be mislabeled trailing prose.
const lateSummaryThreshold = 15

// demoteLateSummary relabels a summary as MISC when it starts suspiciously
// deep into the document with weak confidence.
func demoteLateSummary(sections Result) {
	summary, ok := sections[LabelSummary]
	if !ok || len(summary.Lines) == 0 {
		return
	}
	topmost := summary.Lines[0]
	for _, idx := range summary.Lines {
		if idx < topmost {
			topmost = idx
		}
	}
	if topmost <= lateSummaryThreshold || summary.Confidence >= 0.6 {
		return
	}
	misc := sections[LabelMisc]
	if misc.Confidence == 0 {
		misc.Confidence = 0.5
	}
	misc.Lines = append(misc.Lines, summary.Lines...)
	misc.Text = strings.TrimSpace(misc.Text + "\n" + summary.Text)
	sections[LabelMisc] = misc
	delete(sections, LabelSummary)
}

// splitCoursesFromExperience moves course-like lines out of the experience
// section into courses. A line is reassigned at most once.
func splitCoursesFromExperience(sections Result) {
	exp, ok := sections[LabelExperience]
	if !ok {
		return
	}
	var keepText, courseText []string
	var keepLines, courseLines []int
	for i, ln := range strings.Split(exp.Text, "\n") {
		idx := -1
		if i < len(exp.Lines) {
			idx = exp.Lines[i]
		}
		if coursePattern.MatchString(ln) {
			courseText = append(courseText, ln)
			if idx >= 0 {
				courseLines = append(courseLines, idx)
			}
			continue
		}
		keepText = append(keepText, ln)
		if idx >= 0 {
			keepLines = append(keepLines, idx)
		}
	}
	if len(courseText) == 0 {
		return
	}

	exp.Text = strings.TrimSpace(strings.Join(keepText, "\n"))
	exp.Lines = keepLines
	sections[LabelExperience] = exp

	courses := sections[LabelCourses]
	if courses.Confidence == 0 {
		courses.Confidence = 0.7
	}
	courses.Lines = append(courses.Lines, courseLines...)
	courses.Text = strings.TrimSpace(courses.Text + "\n" + strings.Join(courseText, "\n"))
	sections[LabelCourses] = courses
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
