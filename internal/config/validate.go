package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/semver"
)

// Issue captures a validation problem with one config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks ranges and references. It returns a *ValidationError
// listing every problem, or nil.
func (c Config) Validate() error {
	var issues []Issue
	add := func(field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Workers < 1 {
		add("workers", "must be at least 1")
	}

	a := c.Audit
	if a.MinStemWords < 0 {
		add("audit.min_stem_words", "must not be negative")
	}
	if a.MaxStemWords < a.MinStemWords {
		add("audit.max_stem_words", "must be at least min_stem_words (%d)", a.MinStemWords)
	}
	if a.MinExplanationWords < 0 {
		add("audit.min_explanation_words", "must not be negative")
	}
	if a.MinOptions < 0 {
		add("audit.min_options", "must not be negative")
	}
	if a.MaxOptions < a.MinOptions {
		add("audit.max_options", "must be at least min_options (%d)", a.MinOptions)
	}
	if a.SimilarityThreshold <= 0 || a.SimilarityThreshold > 1 {
		add("audit.similarity_threshold", "must be in (0, 1]")
	}
	if a.MaxDoseGrams <= 0 {
		add("audit.max_dose_grams", "must be positive")
	}
	if a.MaxDoseMilligrams <= 0 {
		add("audit.max_dose_milligrams", "must be positive")
	}
	if strings.TrimSpace(a.ResistanceCategory) == "" {
		add("audit.resistance_category", "is required")
	}

	if v := c.Lexicon.MinVersion; v != "" && !semver.IsValid(v) {
		add("lexicon.min_version", "%q is not a semantic version", v)
	}
	names := make([]string, 0, len(c.Lexicon.Extend))
	for n := range c.Lexicon.Extend {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, ok := lexicon.Default().Lookup(lexicon.Name(n)); !ok {
			add("lexicon.extend."+n, "unknown lexicon entry")
		}
	}

	switch c.Log.Mode {
	case "dev", "prod":
	default:
		add("log.mode", "must be \"dev\" or \"prod\"")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		add("log.level", "%v", err)
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
