package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Data analyst with three years of clinical research experience.
Focused on reproducible pipelines and clean handoffs.

SKILLS
Python, Pandas, SQL • Tableau | Excel

EXPERIENCE
- Built enrollment dashboards for two phase II trials
- Increased reporting throughput by 30% using caching

PROJECTS
- Forecasting model for site activation timelines

EDUCATION
BS in Biology, State University

CERTIFICATIONS
GCP Certification - CITI Program

COURSES
- Intro to Machine Learning - Coursera`

func TestParseResume_SectionsLand(t *testing.T) {
	doc := ParseResume(sampleResume)

	assert.Contains(t, doc.Summary, "clinical research experience")
	assert.Contains(t, doc.Skills, "Python")
	assert.Contains(t, doc.Skills, "Tableau")

	require.Len(t, doc.ExperienceBullets, 2)
	assert.Equal(t, "Built enrollment dashboards for two phase II trials", doc.ExperienceBullets[0])

	require.Len(t, doc.Projects, 1)
	assert.Contains(t, doc.Projects[0], "site activation")

	require.Len(t, doc.Courses, 1)
	assert.Equal(t, "Intro to Machine Learning - Coursera", doc.Courses[0])
}

func TestParseResume_CertificationsMergeIntoEducation(t *testing.T) {
	doc := ParseResume(sampleResume)

	require.Len(t, doc.Education, 2)
	assert.Equal(t, "BS in Biology, State University", doc.Education[0])
	assert.Contains(t, doc.Education[1], "GCP Certification")
}

func TestParseResume_SkillsDedupCaseInsensitive(t *testing.T) {
	doc := ParseResume("SKILLS\nPython, python, SQL, sql, Python")

	assert.Equal(t, []string{"Python", "SQL"}, doc.Skills)
}

func TestParseResume_BulletPrefixesStripped(t *testing.T) {
	doc := ParseResume("EXPERIENCE\n- Led intake\n• Ran audits\n* Wrote SOPs")

	assert.Equal(t, []string{"Led intake", "Ran audits", "Wrote SOPs"}, doc.ExperienceBullets)
}

func TestParseResume_SummaryCapped(t *testing.T) {
	lines := make([]string, 0, maxSummaryLines+3)
	for range maxSummaryLines + 3 {
		lines = append(lines, "An introductory line about the candidate profile.")
	}
	doc := ParseResume(strings.Join(lines, "\n"))

	// Joined with spaces, only the first maxSummaryLines survive.
	assert.Equal(t, maxSummaryLines, strings.Count(doc.Summary, "candidate profile"))
}

func TestParseResume_EmptyInput(t *testing.T) {
	doc := ParseResume("")

	assert.True(t, doc.IsEmpty())
}

func TestExtractSkills_TokenLengthBounds(t *testing.T) {
	got := extractSkills([]string{"R, Go, " + strings.Repeat("x", 41) + ", SQL"}, maxSkills)

	// Single-char and over-long tokens are dropped.
	assert.Equal(t, []string{"Go", "SQL"}, got)
}
