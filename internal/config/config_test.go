package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"job_url":"https://example.com/post","requirements":["Python"],"addr":":9000","verbose":true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/post", cfg.JobURL)
	assert.Equal(t, []string{"Python"}, cfg.Requirements)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, `{"job":`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate_JobAndJobURLExclusive(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com"}
	assert.ErrorContains(t, cfg.Validate(), "mutually exclusive")
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	assert.ErrorContains(t, cfg.Validate(), "resume file not found")
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := &Config{RateLimitRPS: -1}
	assert.ErrorContains(t, cfg.Validate(), "rate_limit_rps")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	merged := cfg.MergeWithDefaults(Config{Resume: "default.txt", Addr: DefaultAddr, Model: "gemini-2.5-flash"})

	assert.Equal(t, "mine.txt", merged.Resume)
	assert.Equal(t, DefaultAddr, merged.Addr)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	assert.Equal(t, "env-key", cfg.APIKeyFromEnv())

	cfg.APIKey = "file-key"
	assert.Equal(t, "file-key", cfg.APIKeyFromEnv())
}
