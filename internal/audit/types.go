package audit

import (
	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
)

// Group is one of the four check groups. Groups run in declaration order.
type Group string

const (
	GroupMedical      Group = "medical-accuracy"
	GroupConstruction Group = "construction"
	GroupDifficulty   Group = "difficulty-appropriateness"
	GroupResistance   Group = "resistance-scenario"
)

// Finding is one detected defect in a question.
type Finding struct {
	Group Group  `json:"group"`
	Check string `json:"check"`
	Issue string `json:"issue"`
}

// Findings is an ordered list of findings: group order, then discovery
// order within a group.
type Findings []Finding

// Strings returns the issue texts in order. The result is never nil.
func (f Findings) Strings() []string {
	out := make([]string, len(f))
	for i, x := range f {
		out[i] = x.Issue
	}
	return out
}

// Input is what every check sees. It is built once per question.
type Input struct {
	Question *question.Question
	Rules    *lexicon.Ruleset
	Config   *Config
}

// Check is a single audit rule.
// Implementations must be stateless and safe for concurrent use.
type Check interface {
	// Name is a short identifier such as "dosage" or "option-similarity".
	Name() string

	// Group is the check group the rule belongs to.
	Group() Group

	// Run returns the issue texts found, in discovery order, or nil.
	Run(in *Input) []string
}
