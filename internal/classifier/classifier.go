// Package classifier provides an optional LLM-backed section classifier
// that refines the sectionizer's rule labels. The pipeline works without
// it; when no API key is configured, no classifier is constructed and the
// rule labels stand.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for line classification. Labeling
// lines is a lite-tier task.
const DefaultModel = "gemini-2.5-flash-lite"

// defaultTimeout bounds a single classification call.
const defaultTimeout = 20 * time.Second

// Gemini labels resume lines with section names using the Gemini API. It
// satisfies the sectionizer's Classifier interface.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New builds a Gemini classifier. A missing API key is not an error: the
// caller gets nil and should proceed rule-only.
func New(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, nil
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, timeout: defaultTimeout}, nil
}

// Predict returns one label per line. ruleLabels are the rule-based
// guesses the model may confirm or correct. Any failure is returned to
// the caller, which falls back to the rule labels.
func (g *Gemini) Predict(lines, ruleLabels []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(lines, ruleLabels)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	var predicted []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &predicted); err != nil {
		return nil, fmt.Errorf("failed to decode labels: %w", err)
	}
	if len(predicted) != len(lines) {
		return nil, fmt.Errorf("expected %d labels, got %d", len(lines), len(predicted))
	}
	return predicted, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func buildPrompt(lines, ruleLabels []string) string {
	var b strings.Builder
	b.WriteString("Label each resume line with its section. Allowed labels: ")
	b.WriteString("SUMMARY, SKILLS, EXPERIENCE, PROJECTS, EDUCATION, COURSES, CERTIFICATIONS, MISC.\n")
	b.WriteString("Respond with a JSON array of strings, one label per line, same order and length as the input.\n\n")
	for i, ln := range lines {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, ruleLabels[i], ln)
	}
	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
