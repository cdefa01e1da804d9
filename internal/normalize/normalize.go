// Package normalize cleans up question banks before auditing: category
// names are mapped to their canonical form, shorthand is expanded, and
// missing difficulty labels and condition ids are filled in.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pathoquiz/quizaudit/internal/difficulty"
	"github.com/pathoquiz/quizaudit/internal/question"
	"github.com/pathoquiz/quizaudit/internal/textmatch"
)

// Change records one field rewritten by the normalizer.
type Change struct {
	Index  int    `json:"question_index,omitempty"` // 1-based; 0 when unknown
	Field  string `json:"field"`
	Before string `json:"before,omitempty"`
	After  string `json:"after"`
}

func (c Change) String() string {
	var msg string
	if c.Before == "" {
		msg = fmt.Sprintf("%s set to '%s'", c.Field, c.After)
	} else {
		msg = fmt.Sprintf("%s standardized from '%s' to '%s'", c.Field, c.Before, c.After)
	}
	if c.Index > 0 {
		return fmt.Sprintf("Question %d: %s", c.Index, msg)
	}
	return msg
}

type expansion struct {
	re   *regexp.Regexp
	long string
}

// Normalizer rewrites questions. It is safe for concurrent use.
type Normalizer struct {
	classifier *difficulty.Classifier
	expansions []expansion
}

// New creates a Normalizer that labels unlabeled questions with c.
// A nil classifier leaves difficulty untouched.
func New(c *difficulty.Classifier, abbrevs []Abbreviation) *Normalizer {
	n := &Normalizer{classifier: c}
	for _, a := range abbrevs {
		pat := `\b` + regexp.QuoteMeta(a.Short) + `\b`
		if !isAllCaps(a.Short) {
			pat = `(?i)` + pat
		}
		n.expansions = append(n.expansions, expansion{re: regexp.MustCompile(pat), long: a.Long})
	}
	return n
}

var defaultNormalizer = New(difficulty.Default(), Abbreviations)

// Default returns a Normalizer with the built-in tables and classifier.
func Default() *Normalizer {
	return defaultNormalizer
}

// Standardize returns the canonical name for category, or category itself
// when it has no known alias. Matching ignores case and surrounding space.
func Standardize(category string) string {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(category))]; ok {
		return c
	}
	return category
}

// ExpandAbbreviations replaces every known shorthand in text.
func (n *Normalizer) ExpandAbbreviations(text string) string {
	for _, e := range n.expansions {
		text = e.re.ReplaceAllLiteralString(text, e.long)
	}
	return text
}

// ConditionID derives a condition id from the stem, falling back to the
// category and then to GeneralCondition.
func ConditionID(stem, category string) string {
	for _, p := range conditionPatterns {
		if textmatch.Occurs(stem, p.phrase) {
			return p.id
		}
	}
	if id, ok := categoryConditions[category]; ok {
		return id
	}
	return GeneralCondition
}

// Normalize returns a rewritten copy of q and the changes made, in field
// order. q itself is not modified.
func (n *Normalizer) Normalize(q question.Question) (question.Question, []Change) {
	out := q.Clone()
	var changes []Change
	set := func(field, before, after string) string {
		if before != after {
			changes = append(changes, Change{Field: field, Before: before, After: after})
		}
		return after
	}

	out.Category = set("category", q.Category, Standardize(q.Category))
	out.Stem = set("question", q.Stem, n.ExpandAbbreviations(q.Stem))
	out.Explanation = set("explanation", q.Explanation, n.ExpandAbbreviations(q.Explanation))
	for i, o := range q.Options {
		out.Options[i] = set(fmt.Sprintf("option %d", i+1), o, n.ExpandAbbreviations(o))
	}

	if out.Difficulty == "" && n.classifier != nil {
		out.Difficulty = question.Difficulty(set("difficulty", "",
			string(n.classifier.Classify(out.Stem, out.Explanation, out.Category))))
	}
	if out.ConditionID == "" {
		out.ConditionID = set("conditionId", "", ConditionID(out.Stem, out.Category))
	}
	return out, changes
}

// NormalizeAll normalizes every question. Change indexes are 1-based
// positions in qs.
func (n *Normalizer) NormalizeAll(qs []question.Question) ([]question.Question, []Change) {
	out := make([]question.Question, len(qs))
	var changes []Change
	for i, q := range qs {
		nq, cs := n.Normalize(q)
		out[i] = nq
		for _, c := range cs {
			c.Index = i + 1
			changes = append(changes, c)
		}
	}
	return out, changes
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
