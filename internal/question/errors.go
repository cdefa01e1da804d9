package question

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when a source parses but holds no questions.
var ErrNoQuestions = errors.New("no questions found")

// LoadError describes why a question source could not be loaded.
// Index is the zero-based record that failed schema validation, or -1 when
// the failure is not tied to a single record.
type LoadError struct {
	Path  string
	Index int
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Index >= 0 && e.Path != "":
		return fmt.Sprintf("load %s: question %d: %v", e.Path, e.Index+1, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("question %d: %v", e.Index+1, e.Err)
	case e.Path != "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *LoadError) Unwrap() error { return e.Err }
