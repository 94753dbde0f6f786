package lexicon

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExactKey(t *testing.T) {
	entry, ok := Resolve("Experience with Python and pandas")
	require.True(t, ok)
	assert.True(t, entry.Exact)
	assert.Equal(t, "experience with python and pandas", entry.Key)
	assert.Contains(t, entry.Synonyms, "pandas")
}

func TestResolve_FuzzyOverlap(t *testing.T) {
	entry, ok := Resolve("Hands-on Python and pandas work on production pipelines")
	require.True(t, ok)
	assert.False(t, entry.Exact)
	assert.Equal(t, "experience with python and pandas", entry.Key)
}

func TestResolve_Miss(t *testing.T) {
	_, ok := Resolve("Fluent in Esperanto")
	assert.False(t, ok)
}

func TestResolve_TieBreakIsLexicographic(t *testing.T) {
	// A requirement overlapping several keys equally must resolve to the
	// lexicographically first of them, not to map iteration order.
	keys := Keys()
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	assert.Equal(t, sorted, keys)

	first, ok := Resolve("python experience")
	require.True(t, ok)
	again, ok := Resolve("python experience")
	require.True(t, ok)
	assert.Equal(t, first.Key, again.Key)
}

func TestContentWords_FiltersShortAndStopWords(t *testing.T) {
	words := ContentWords("Experience with Python and the pandas library")
	assert.Contains(t, words, "python")
	assert.Contains(t, words, "pandas")
	assert.Contains(t, words, "library")
	assert.NotContains(t, words, "with")
	assert.NotContains(t, words, "and")
	assert.NotContains(t, words, "experience")
}

func TestNormalizeForSearch(t *testing.T) {
	assert.Equal(t, "case report form crf entry", NormalizeForSearch("Case-Report Form (CRF) entry!"))
}

func TestHasMetric(t *testing.T) {
	assert.True(t, HasMetric("Increased throughput by 30% using caching"))
	assert.True(t, HasMetric("enrolled n=45 subjects"))
	assert.True(t, HasMetric("processed 10k records daily"))
	assert.True(t, HasMetric("saved $20000 annually"))
	assert.True(t, HasMetric("over 3 years of pipeline maintenance"))
	assert.False(t, HasMetric("improved the onboarding flow"))
}

func TestIsDutyLed(t *testing.T) {
	assert.True(t, IsDutyLed("Manages recruitment and enrollment of research subjects"))
	assert.True(t, IsDutyLed("coordinates clinical study visits"))
	assert.False(t, IsDutyLed("Strong written and verbal communication skills"))
}

func TestLooksCourseLine(t *testing.T) {
	assert.True(t, LooksCourseLine("Intro to Machine Learning – Coursera"))
	assert.True(t, LooksCourseLine("Clinical Trials Workshop - Duke University"))
	assert.False(t, LooksCourseLine("Built a dashboard for enrollment metrics"))
}
