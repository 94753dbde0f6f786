// Package ingestion reads resume and job posting sources (local files,
// URLs, or inline text) and normalizes them into plain text for parsing.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds HTTP fetches of remote postings.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client on remote fetches.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobMatchCopilot/1.0)"

// InputError reports a source that could not be read or decoded.
type InputError struct {
	Source  string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("input error for %s: %s", e.Source, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Options configures source reading.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for reading sources.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// ReadSource resolves a source to cleaned plain text. An http(s) URL is
// fetched and its main content extracted; anything else is read as a local
// file, with HTML files run through the same extraction.
func ReadSource(ctx context.Context, source string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if strings.TrimSpace(source) == "" {
		return "", &InputError{Source: source, Message: "empty source"}
	}

	if isURL(source) {
		html, err := fetchURL(ctx, source, opts)
		if err != nil {
			return "", err
		}
		text, err := ExtractMainText(html, postingSelectors())
		if err != nil {
			return "", &InputError{Source: source, Message: "failed to extract text", Cause: err}
		}
		cleaned := CleanText(text)
		if cleaned == "" {
			return "", &InputError{Source: source, Message: "empty content"}
		}
		return cleaned, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", &InputError{Source: source, Message: "failed to read file", Cause: err}
	}

	var text string
	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm":
		text, err = ExtractMainText(string(data), postingSelectors())
		if err != nil {
			return "", &InputError{Source: source, Message: "failed to extract text", Cause: err}
		}
	default:
		text = string(data)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &InputError{Source: source, Message: "empty content"}
	}
	return cleaned, nil
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func fetchURL(ctx context.Context, urlStr string, opts *Options) (string, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &InputError{Source: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &InputError{Source: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &InputError{Source: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &InputError{Source: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return string(body), nil
}

// ExtractMainText parses HTML and returns the main body text. Noise
// elements are removed first; if no content selector matches, the body
// element is used.
func ExtractMainText(html string, contentSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return main.Text(), nil
}

// postingSelectors targets the content regions job boards and personal
// sites typically use.
func postingSelectors() []string {
	return []string{
		".job-description",
		"#job-description",
		".posting-content",
		".job-details",
		"main",
		"article",
		".content",
		"#content",
	}
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes line endings, trims per-line whitespace, and
// collapses runs of blank lines to a single blank line.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(strings.TrimLeft(ln, " \t"), " \t")
	}
	out := strings.Join(lines, "\n")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
