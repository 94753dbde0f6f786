package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoAPIKeyReturnsNil(t *testing.T) {
	clf, err := New(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, clf)
}

func TestBuildPrompt_IncludesRuleLabelsAndLines(t *testing.T) {
	got := buildPrompt(
		[]string{"Python, SQL", "BS in Biology"},
		[]string{"SKILLS", "EDUCATION"},
	)

	assert.Contains(t, got, "1. [SKILLS] Python, SQL")
	assert.Contains(t, got, "2. [EDUCATION] BS in Biology")
	assert.Contains(t, got, "JSON array")
}

func TestCleanJSONBlock_StripsFences(t *testing.T) {
	assert.Equal(t, `["SKILLS"]`, cleanJSONBlock("```json\n[\"SKILLS\"]\n```"))
	assert.Equal(t, `["SKILLS"]`, cleanJSONBlock(`["SKILLS"]`))
}
