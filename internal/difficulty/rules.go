package difficulty

import (
	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
)

// Bucket is one of the three score accumulators.
type Bucket int

const (
	BucketBeginner Bucket = iota
	BucketIntermediate
	BucketAdvanced
)

func (b Bucket) String() string {
	switch b {
	case BucketBeginner:
		return "beginner"
	case BucketIntermediate:
		return "intermediate"
	case BucketAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Field selects which text a rule scans.
type Field int

const (
	FieldEither Field = iota // stem or explanation
	FieldStem
	FieldExplanation
)

// PhraseRule adds Weight to Bucket when Phrase occurs in Field.
type PhraseRule struct {
	Phrase string
	Field  Field
	Bucket Bucket
	Weight int
}

// lexiconWeights assigns a bucket and weight to each scored lexicon.
var lexiconWeights = []struct {
	entry  lexicon.Name
	bucket Bucket
	weight int
}{
	{lexicon.AdvancedKeywords, BucketAdvanced, 2},
	{lexicon.IntermediateKeywords, BucketIntermediate, 1},
	{lexicon.BeginnerKeywords, BucketBeginner, 1},
}

// literalRules are extra fixed phrases, cumulative with the lexicon scan.
var literalRules = []PhraseRule{
	{Phrase: "specific choice and duration", Field: FieldExplanation, Bucket: BucketAdvanced, Weight: 2},
	{Phrase: "guided by culture", Field: FieldExplanation, Bucket: BucketIntermediate, Weight: 1},
	{Phrase: "empiric recommendations", Field: FieldExplanation, Bucket: BucketBeginner, Weight: 1},
	{Phrase: "depending on", Field: FieldExplanation, Bucket: BucketIntermediate, Weight: 1},
	{Phrase: "consider", Field: FieldStem, Bucket: BucketIntermediate, Weight: 1},
}

// LiteralRules returns a copy of the fixed phrase rules.
func LiteralRules() []PhraseRule {
	out := make([]PhraseRule, len(literalRules))
	copy(out, literalRules)
	return out
}

// buildRules expands the scored lexicons of rs into phrase rules and
// appends the literal rules.
func buildRules(rs *lexicon.Ruleset) []PhraseRule {
	var rules []PhraseRule
	for _, lw := range lexiconWeights {
		for _, p := range rs.Phrases(lw.entry) {
			rules = append(rules, PhraseRule{Phrase: p, Field: FieldEither, Bucket: lw.bucket, Weight: lw.weight})
		}
	}
	return append(rules, literalRules...)
}

// categoryDefaults is consulted only when no scoring rule decides.
// Keys are lowercase category names.
var categoryDefaults = map[string]question.Difficulty{
	"central nervous system": question.Advanced,
	"bone/joint":             question.Advanced,
	"bloodstream infection":  question.Advanced,
	"skin and soft tissue":   question.Intermediate,
	"respiratory":            question.Intermediate,
	"genitourinary":          question.Intermediate,
}

// CategoryDefault returns the fallback label for category.
// Unknown categories default to beginner.
func CategoryDefault(category string) question.Difficulty {
	if d, ok := categoryDefaults[lower(category)]; ok {
		return d
	}
	return question.Beginner
}
