package question

import (
	"slices"
	"strings"
)

// Difficulty is a coarse complexity label for a question.
// The empty value means no label has been assigned.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists the labels in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Valid reports whether d is one of the three known labels.
func (d Difficulty) Valid() bool {
	return d == Beginner || d == Intermediate || d == Advanced
}

// ParseDifficulty converts s (any case, surrounding space ignored) into a
// Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// Question is one multiple-choice item from the quiz bank.
// Questions are treated as read-only values; helpers that change a field
// return a new Question.
type Question struct {
	// Stem is the question text posed to the quiz-taker.
	Stem string `json:"question" yaml:"question"`

	// Options are the answer choices, normally 3 to 5 of them.
	Options []string `json:"options" yaml:"options"`

	// Correct is the zero-based index of the right option.
	Correct int `json:"correct" yaml:"correct"`

	// Explanation is shown after the learner answers.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Category is a clinical category such as "Respiratory".
	Category string `json:"category" yaml:"category"`

	// Difficulty is the stored label, if any. Banks may carry labels
	// outside the known three; those are kept verbatim.
	Difficulty Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// ConditionID links the question to a condition record.
	ConditionID string `json:"conditionId,omitempty" yaml:"conditionId,omitempty"`
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// WithDifficulty returns a copy of q carrying label d.
func (q Question) WithDifficulty(d Difficulty) Question {
	c := q.Clone()
	c.Difficulty = d
	return c
}

// Excerpt returns the first n characters of the stem followed by "...".
func (q Question) Excerpt(n int) string {
	r := []rune(q.Stem)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
