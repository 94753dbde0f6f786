// Package lexicon holds the static, process-wide dictionaries behind
// requirement matching: the requirement→synonym lexicon, the section term
// banks, and the shared snippet/requirement → section routing used by both
// the evaluator and the counterfactual generator. All tables are read-only
// after init, so concurrent use needs no locking.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// requirementLexicon maps curated requirement phrasings to domain synonyms.
// Keys are matched case-insensitively; synonyms are searched as substrings of
// the normalized resume corpus. Resumes rarely reuse job-posting phrasing
// verbatim, which is what this table absorbs.
var requirementLexicon = map[string][]string{
	"experience with python and pandas": {
		"python", "pandas", "numpy", "dataframe", "jupyter",
	},
	"proficiency in sql and relational databases": {
		"sql", "postgresql", "mysql", "database", "query",
	},
	"experience deploying machine learning models": {
		"deploy", "mlflow", "docker", "fastapi", "inference", "production model",
	},
	"experience with statistical analysis": {
		"statistics", "statistical", "regression", "hypothesis", "anova", "sas", "spss",
	},
	"experience building data visualizations and dashboards": {
		"tableau", "powerbi", "dashboard", "matplotlib", "visualization", "plotly",
	},
	"manages recruitment and enrollment of research subjects": {
		"recruitment", "enrollment", "screening", "informed consent", "study subjects",
	},
	"completes case report forms and resolves data queries": {
		"case report form", "crf", "data query", "query resolution", "edc",
	},
	"ensures compliance with good clinical practice": {
		"good clinical practice", "gcp", "ich", "regulatory compliance", "protocol adherence",
	},
	"coordinates clinical study visits and monitoring": {
		"study visit", "monitoring visit", "site coordination", "clinical trial", "study coordinator",
	},
	"maintains institutional review board documentation": {
		"irb", "institutional review board", "ethics submission", "regulatory binder",
	},
	"strong written and verbal communication skills": {
		"communication", "presented", "presentation", "stakeholder", "wrote", "authored",
	},
	"experience with cloud platforms": {
		"aws", "azure", "gcp", "cloud", "s3", "lambda", "ec2",
	},
	"experience with version control and collaborative development": {
		"git", "github", "gitlab", "code review", "pull request",
	},
	"experience with containerization and orchestration": {
		"docker", "kubernetes", "container", "helm",
	},
	"experience conducting laboratory procedures": {
		"laboratory", "specimen", "assay", "sample processing", "pipetting",
	},
}

// lexiconKeys holds the lexicon keys in lexicographic order. Fuzzy key
// selection iterates this slice so that overlap ties resolve
// deterministically to the lexicographically first key.
var lexiconKeys = func() []string {
	keys := make([]string, 0, len(requirementLexicon))
	for k := range requirementLexicon {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

var tokenPattern = regexp.MustCompile(`[a-z0-9+#.]{2,}`)

// stopWords filters connective words that add noise to token overlap.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "ability": true, "strong": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"experience": true, "knowledge": true, "skills": true, "proficiency": true,
	"using": true, "used": true, "including": true, "related": true,
	"years": true, "must": true, "plus": true, "other": true, "such": true,
}

// Tokens lowercases s and extracts word tokens, preserving tech suffixes
// like "c++", "c#" and "node.js".
func Tokens(s string) []string {
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}

// TokenSet returns the set of tokens in s.
func TokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokens(s) {
		set[t] = true
	}
	return set
}

// ContentWords extracts the meaningful tokens of a requirement: longer than
// three characters and not a stop word.
func ContentWords(s string) []string {
	var out []string
	for _, t := range Tokens(s) {
		if len(t) > 3 && !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

var nonSearchable = regexp.MustCompile(`[^a-z0-9+# ]+`)

// NormalizeForSearch lowercases s and strips punctuation so that substring
// matching is case- and punctuation-insensitive.
func NormalizeForSearch(s string) string {
	s = strings.ToLower(s)
	s = nonSearchable.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Entry is a resolved lexicon entry for a requirement.
type Entry struct {
	Key      string
	Synonyms []string
	Exact    bool
}

// Resolve finds the lexicon entry for a requirement: an exact
// case-insensitive key match wins; otherwise the key whose token set has
// the largest overlap with the requirement's content words is chosen, ties
// going to the lexicographically first key. Returns ok=false when no key
// shares a single token with the requirement (a lexicon miss, recovered by
// the evaluator's fallback pass).
func Resolve(requirement string) (Entry, bool) {
	lowered := strings.ToLower(strings.TrimSpace(requirement))
	if syns, ok := requirementLexicon[lowered]; ok {
		return Entry{Key: lowered, Synonyms: syns, Exact: true}, true
	}

	reqTokens := TokenSet(requirement)
	bestKey := ""
	bestOverlap := 0
	for _, key := range lexiconKeys {
		overlap := 0
		for _, t := range Tokens(key) {
			if stopWords[t] {
				continue
			}
			if reqTokens[t] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			bestKey = key
		}
	}
	if bestOverlap == 0 {
		return Entry{}, false
	}
	return Entry{Key: bestKey, Synonyms: requirementLexicon[bestKey]}, true
}

// Keys returns the lexicon keys in their deterministic iteration order.
// Exposed for tests.
func Keys() []string {
	out := make([]string, len(lexiconKeys))
	copy(out, lexiconKeys)
	return out
}
