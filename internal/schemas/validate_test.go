package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_ScoreResponseValid(t *testing.T) {
	doc := []byte(`{
		"score": 0.38,
		"confidence": 0.75,
		"evaluations": [
			{"requirement": "Python", "status": "Met", "evidence": ["Python"], "confidence": 0.9},
			{"requirement": "Tableau", "status": "Missing", "confidence": 0.5}
		]
	}`)

	assert.NoError(t, ValidateDocument(ScoreResponse, doc))
}

func TestValidateDocument_ScoreResponseBadStatus(t *testing.T) {
	doc := []byte(`{
		"score": 0.5,
		"confidence": 0.5,
		"evaluations": [{"requirement": "Python", "status": "Unknown", "confidence": 0.5}]
	}`)

	err := ValidateDocument(ScoreResponse, doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateDocument_ScoreOutOfRange(t *testing.T) {
	doc := []byte(`{"score": 1.5, "confidence": 0.5, "evaluations": []}`)

	var ve *ValidationError
	require.ErrorAs(t, ValidateDocument(ScoreResponse, doc), &ve)
}

func TestValidateDocument_CounterfactualValid(t *testing.T) {
	doc := []byte(`{
		"sections": {
			"skills": [{
				"target_requirement": "Tableau",
				"section": "skills",
				"change_type": "skill_alignment",
				"after": "Add Tableau to the skills list, only if it is true.",
				"rationale": "Exact terms match keyword screens."
			}]
		},
		"suggestions": [{
			"target_requirement": "",
			"section": "summary",
			"change_type": "tighten_summary",
			"before": "Old summary",
			"after": "Trim the summary to two lines.",
			"rationale": "Focus."
		}]
	}`)

	assert.NoError(t, ValidateDocument(CounterfactualResponse, doc))
}

func TestValidateDocument_CounterfactualBadSection(t *testing.T) {
	doc := []byte(`{
		"suggestions": [{
			"target_requirement": "x",
			"section": "footer",
			"change_type": "skill_alignment",
			"after": "y",
			"rationale": "z"
		}]
	}`)

	var ve *ValidationError
	require.ErrorAs(t, ValidateDocument(CounterfactualResponse, doc), &ve)
}

func TestValidateDocument_ActionValid(t *testing.T) {
	doc := []byte(`{"decision": "request-info", "details": {"email_draft": "hi"}}`)
	assert.NoError(t, ValidateDocument(ActionResponse, doc))
}

func TestValidateDocument_ActionBadDecision(t *testing.T) {
	var ve *ValidationError
	require.ErrorAs(t, ValidateDocument(ActionResponse, []byte(`{"decision": "hire"}`)), &ve)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	var le *SchemaLoadError
	require.ErrorAs(t, ValidateDocument("nope", []byte(`{}`)), &le)
}
