package audit

import (
	"fmt"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/textmatch"
)

// StemLengthCheck bounds the stem word count.
type StemLengthCheck struct{}

func (c *StemLengthCheck) Name() string { return "stem-length" }
func (c *StemLengthCheck) Group() Group { return GroupConstruction }

func (c *StemLengthCheck) Run(in *Input) []string {
	n := textmatch.WordCount(in.Question.Stem)
	switch {
	case n < in.Config.MinStemWords:
		return []string{"Question too short - may lack sufficient clinical context"}
	case n > in.Config.MaxStemWords:
		return []string{"Question too long - may be difficult to process"}
	}
	return nil
}

// AmbiguityCheck flags each hedging word in the stem.
type AmbiguityCheck struct{}

func (c *AmbiguityCheck) Name() string { return "ambiguous-language" }
func (c *AmbiguityCheck) Group() Group { return GroupConstruction }

func (c *AmbiguityCheck) Run(in *Input) []string {
	var issues []string
	for _, w := range textmatch.MatchAll(in.Rules.Phrases(lexicon.AmbiguousMarkers), in.Question.Stem) {
		issues = append(issues, fmt.Sprintf("Ambiguous language detected: '%s'", w))
	}
	return issues
}

// OptionCountCheck bounds the number of answer options.
type OptionCountCheck struct{}

func (c *OptionCountCheck) Name() string { return "option-count" }
func (c *OptionCountCheck) Group() Group { return GroupConstruction }

func (c *OptionCountCheck) Run(in *Input) []string {
	n := len(in.Question.Options)
	switch {
	case n < in.Config.MinOptions:
		return []string{fmt.Sprintf("Too few answer options - should have at least %d", in.Config.MinOptions)}
	case n > in.Config.MaxOptions:
		return []string{fmt.Sprintf("Too many answer options - should have at most %d", in.Config.MaxOptions)}
	}
	return nil
}

// CorrectIndexCheck flags a correct-answer index that names no option.
type CorrectIndexCheck struct{}

func (c *CorrectIndexCheck) Name() string { return "correct-index" }
func (c *CorrectIndexCheck) Group() Group { return GroupConstruction }

func (c *CorrectIndexCheck) Run(in *Input) []string {
	q := in.Question
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return []string{fmt.Sprintf("Correct answer index %d out of range", q.Correct)}
	}
	return nil
}

// OptionSimilarityCheck flags every pair of near-duplicate options,
// identified by 1-based position.
type OptionSimilarityCheck struct{}

func (c *OptionSimilarityCheck) Name() string { return "option-similarity" }
func (c *OptionSimilarityCheck) Group() Group { return GroupConstruction }

func (c *OptionSimilarityCheck) Run(in *Input) []string {
	opts := in.Question.Options
	var issues []string
	for i := 0; i < len(opts); i++ {
		for j := i + 1; j < len(opts); j++ {
			if textmatch.Similarity(opts[i], opts[j]) >= in.Config.SimilarityThreshold {
				issues = append(issues, fmt.Sprintf("Options %d and %d are too similar", i+1, j+1))
			}
		}
	}
	return issues
}

// ExplanationLengthCheck requires a minimum explanation word count.
type ExplanationLengthCheck struct{}

func (c *ExplanationLengthCheck) Name() string { return "explanation-length" }
func (c *ExplanationLengthCheck) Group() Group { return GroupConstruction }

func (c *ExplanationLengthCheck) Run(in *Input) []string {
	if textmatch.WordCount(in.Question.Explanation) < in.Config.MinExplanationWords {
		return []string{"Explanation too short - should provide more detail"}
	}
	return nil
}

// CausalReasoningCheck requires a causal connective in the explanation.
type CausalReasoningCheck struct{}

func (c *CausalReasoningCheck) Name() string { return "causal-reasoning" }
func (c *CausalReasoningCheck) Group() Group { return GroupConstruction }

func (c *CausalReasoningCheck) Run(in *Input) []string {
	if !textmatch.AnyOccurs(in.Question.Explanation, in.Rules.Phrases(lexicon.CausalConnectives)) {
		return []string{"Explanation lacks causal reasoning"}
	}
	return nil
}
