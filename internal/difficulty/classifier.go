package difficulty

import (
	"strings"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
	"github.com/pathoquiz/quizaudit/internal/textmatch"
)

// Decision is a label together with the evidence that produced it.
type Decision struct {
	Label question.Difficulty
	Tally Tally
	// Rule names the decision rule that fired, e.g. "advanced-score" or
	// "category-default".
	Rule string
}

// decisionRule maps a tally to a label, or reports that it does not apply.
type decisionRule struct {
	name  string
	label question.Difficulty
	fires func(Tally) bool
}

// decisionRules are evaluated in order; the first that fires wins.
var decisionRules = []decisionRule{
	{
		name:  "advanced-score",
		label: question.Advanced,
		fires: func(t Tally) bool { return t.Advanced >= 2 || t.ComplexCondition },
	},
	{
		name:  "intermediate-score",
		label: question.Intermediate,
		fires: func(t Tally) bool {
			return t.Intermediate >= 2 || (t.Intermediate >= 1 && !t.BasicCondition)
		},
	},
	{
		name:  "beginner-score",
		label: question.Beginner,
		fires: func(t Tally) bool { return t.Beginner >= 1 || t.BasicCondition },
	},
}

// Classifier assigns difficulty labels from question text.
// A Classifier holds only read-only data and is safe for concurrent use.
type Classifier struct {
	rules   []PhraseRule
	complex []string
	basic   []string
}

// New builds a Classifier over the phrase tables in rs.
func New(rs *lexicon.Ruleset) *Classifier {
	return &Classifier{
		rules:   buildRules(rs),
		complex: rs.Phrases(lexicon.ComplexConditions),
		basic:   rs.Phrases(lexicon.BasicConditions),
	}
}

var defaultClassifier = New(lexicon.Default())

// Default returns the Classifier over the built-in lexicon.
func Default() *Classifier {
	return defaultClassifier
}

// Classify labels a question using the built-in lexicon.
func Classify(stem, explanation, category string) question.Difficulty {
	return defaultClassifier.Classify(stem, explanation, category)
}

// Classify returns beginner, intermediate or advanced. It never fails;
// text that matches nothing falls back to the category default.
func (c *Classifier) Classify(stem, explanation, category string) question.Difficulty {
	return c.Explain(stem, explanation, category).Label
}

// Explain classifies and returns the tally and the rule that decided.
func (c *Classifier) Explain(stem, explanation, category string) Decision {
	t := c.Score(stem, explanation)
	for _, r := range decisionRules {
		if r.fires(t) {
			return Decision{Label: r.label, Tally: t, Rule: r.name}
		}
	}
	return Decision{Label: CategoryDefault(category), Tally: t, Rule: "category-default"}
}

// Score folds every matching rule into a fresh Tally.
func (c *Classifier) Score(stem, explanation string) Tally {
	var t Tally
	for _, r := range c.rules {
		if ruleMatches(r, stem, explanation) {
			t = t.add(r)
		}
	}
	_, t.ComplexCondition = textmatch.FirstMatch(c.complex, stem, explanation)
	_, t.BasicCondition = textmatch.FirstMatch(c.basic, stem, explanation)
	return t
}

func ruleMatches(r PhraseRule, stem, explanation string) bool {
	switch r.Field {
	case FieldStem:
		return textmatch.Occurs(stem, r.Phrase)
	case FieldExplanation:
		return textmatch.Occurs(explanation, r.Phrase)
	default:
		return textmatch.OccursAny(r.Phrase, stem, explanation)
	}
}

// Distribution counts questions per label.
type Distribution map[question.Difficulty]int

// Total returns the number of counted questions.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Percent returns the share of label as a percentage, or 0 for an empty
// distribution.
func (d Distribution) Percent(label question.Difficulty) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d[label]) / float64(total) * 100
}

// ClassifyAll labels every question. Inputs are not modified; the result
// holds new Question values in input order, with any existing label
// overwritten. The distribution always has all three labels.
func (c *Classifier) ClassifyAll(qs []question.Question) ([]question.Question, Distribution) {
	out := make([]question.Question, len(qs))
	dist := Distribution{}
	for _, d := range question.Difficulties {
		dist[d] = 0
	}
	for i, q := range qs {
		label := c.Classify(q.Stem, q.Explanation, q.Category)
		out[i] = q.WithDifficulty(label)
		dist[label]++
	}
	return out, dist
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
