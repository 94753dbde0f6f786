// Package skills provides canonicalization of free-text skill tokens.
package skills

import (
	"sort"
	"strings"
)

// aliases maps common skill variants to canonical names. Keys are stored
// case-folded with punctuation collapsed, the same folding applied to lookups.
var aliases = map[string]string{
	"scikit learn":      "scikit-learn",
	"sklearn":           "scikit-learn",
	"python3":           "python",
	"py torch":          "pytorch",
	"torch":             "pytorch",
	"tf":                "tensorflow",
	"js":                "javascript",
	"ts":                "typescript",
	"golang":            "go",
	"go lang":           "go",
	"k8s":               "kubernetes",
	"postgres":          "postgresql",
	"ms excel":          "excel",
	"microsoft excel":   "excel",
	"power bi":          "powerbi",
	"np":                "numpy",
	"crf":               "case report form",
	"crfs":              "case report form",
	"ecrf":              "case report form",
	"gcp practice":      "good clinical practice",
	"edc":               "electronic data capture",
	"irb":               "institutional review board",
	"sops":              "standard operating procedures",
	"sop":               "standard operating procedures",
	"ml":                "machine learning",
	"dl":                "deep learning",
	"nlp":               "natural language processing",
	"viz":               "data visualization",
	"ci cd":             "ci/cd",
	"rest apis":         "rest api",
	"restful":           "rest api",
	"node js":           "node.js",
	"nodejs":            "node.js",
	"react js":          "react",
	"reactjs":           "react",
}

// punctFolder collapses separator punctuation so that lookups tolerate
// variants like "scikit-learn" / "scikit_learn" / "scikit learn".
var punctFolder = strings.NewReplacer("-", " ", "_", " ", "/", " ", ",", " ", ";", " ")

// fold produces the lookup form of a token: lower-cased, trimmed, separator
// punctuation replaced by single spaces.
func fold(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	t = punctFolder.Replace(t)
	return strings.Join(strings.Fields(t), " ")
}

// Normalize maps a single skill term to its canonical form. Unrecognized
// terms pass through lower-cased and trimmed. Total function, never fails.
func Normalize(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return ""
	}
	if canonical, ok := aliases[fold(t)]; ok {
		return canonical
	}
	return t
}

// NormalizeAll normalizes a list of skill terms and returns the sorted,
// deduplicated set. Empty terms are dropped.
func NormalizeAll(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		n := Normalize(term)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
