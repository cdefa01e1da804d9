package normalize

import (
	"fmt"
	"strings"

	"github.com/pathoquiz/quizaudit/internal/question"
)

// Issue is a structural problem found in one question.
type Issue struct {
	Index   int    `json:"question_index,omitempty"` // 1-based; 0 when unknown
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Index > 0 {
		return fmt.Sprintf("Question %d: %s", i.Index, i.Message)
	}
	return i.Message
}

// Validate reports required fields that are missing or blank and an
// answer index that does not point at an option.
func Validate(q question.Question) []string {
	var issues []string
	missing := func(field string) {
		issues = append(issues, fmt.Sprintf("Missing or empty field '%s'", field))
	}

	if strings.TrimSpace(q.Stem) == "" {
		missing("question")
	}
	if len(q.Options) == 0 {
		missing("options")
	} else if q.Correct < 0 || q.Correct >= len(q.Options) {
		issues = append(issues, fmt.Sprintf("Correct answer index %d out of range", q.Correct))
	}
	if strings.TrimSpace(q.Explanation) == "" {
		missing("explanation")
	}
	if strings.TrimSpace(q.Category) == "" {
		missing("category")
	}
	return issues
}

// ValidateAll validates every question. Issue indexes are 1-based
// positions in qs.
func ValidateAll(qs []question.Question) []Issue {
	var out []Issue
	for i, q := range qs {
		for _, msg := range Validate(q) {
			out = append(out, Issue{Index: i + 1, Message: msg})
		}
	}
	return out
}
