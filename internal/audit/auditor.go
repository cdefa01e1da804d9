package audit

import (
	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
)

// DefaultChecks returns the standard check chain in execution order.
// Group order is medical accuracy, construction, difficulty
// appropriateness, resistance scenarios.
func DefaultChecks() []Check {
	return []Check{
		&TermContextCheck{},
		&DrugBugMismatchCheck{},
		&DosageCheck{},

		&StemLengthCheck{},
		&AmbiguityCheck{},
		&OptionCountCheck{},
		&CorrectIndexCheck{},
		&OptionSimilarityCheck{},
		&ExplanationLengthCheck{},
		&CausalReasoningCheck{},

		&DifficultyFitCheck{},

		&ResistanceScenarioCheck{},
	}
}

// Auditor runs a check chain over questions. It holds only read-only data
// and is safe for concurrent use.
type Auditor struct {
	rules  *lexicon.Ruleset
	config Config
	checks []Check
}

// New creates an Auditor with the default check chain.
func New(rules *lexicon.Ruleset, cfg Config) *Auditor {
	return NewWithChecks(rules, cfg, DefaultChecks())
}

// NewWithChecks creates an Auditor with a custom check chain.
func NewWithChecks(rules *lexicon.Ruleset, cfg Config, checks []Check) *Auditor {
	return &Auditor{rules: rules, config: cfg, checks: checks}
}

var defaultAuditor = New(lexicon.Default(), DefaultConfig())

// Default returns an Auditor with the built-in lexicon and thresholds.
func Default() *Auditor {
	return defaultAuditor
}

// Audit runs the built-in auditor over q.
func Audit(q question.Question) Findings {
	return defaultAuditor.Audit(q)
}

// Audit runs every check over q and concatenates their findings. The
// result is never nil; an empty list means no issues.
func (a *Auditor) Audit(q question.Question) Findings {
	cfg := a.config
	in := &Input{Question: &q, Rules: a.rules, Config: &cfg}

	findings := Findings{}
	for _, c := range a.checks {
		for _, issue := range c.Run(in) {
			findings = append(findings, Finding{Group: c.Group(), Check: c.Name(), Issue: issue})
		}
	}
	return findings
}

// Config returns a copy of the auditor's thresholds.
func (a *Auditor) Config() Config {
	return a.config
}
