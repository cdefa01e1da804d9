package audit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/textmatch"
)

// termContext pairs a term lexicon with the stem words that justify it.
var termContexts = []struct {
	terms   lexicon.Name
	context lexicon.Name
	label   string
}{
	{lexicon.AntibioticNames, lexicon.AntibioticContext, "Antibiotic"},
	{lexicon.PathogenNames, lexicon.PathogenContext, "Pathogen"},
	{lexicon.ResistanceMechanisms, lexicon.ResistanceContext, "Resistance mechanism"},
	{lexicon.ClinicalTerms, lexicon.ClinicalContext, "Clinical term"},
}

// TermContextCheck flags domain terms that appear without any context word
// in the stem.
type TermContextCheck struct{}

func (c *TermContextCheck) Name() string { return "term-context" }
func (c *TermContextCheck) Group() Group { return GroupMedical }

func (c *TermContextCheck) Run(in *Input) []string {
	q := in.Question
	var issues []string
	for _, tc := range termContexts {
		present := textmatch.MatchAll(in.Rules.Phrases(tc.terms), q.Stem, q.Explanation)
		if len(present) == 0 {
			continue
		}
		if textmatch.AnyOccurs(q.Stem, in.Rules.Phrases(tc.context)) {
			continue
		}
		for _, term := range present {
			issues = append(issues, fmt.Sprintf("%s '%s' mentioned without proper clinical context", tc.label, term))
		}
	}
	return issues
}

// DrugBugMismatchCheck flags stems that pair a resistant organism with an
// agent that cannot treat it.
type DrugBugMismatchCheck struct{}

func (c *DrugBugMismatchCheck) Name() string { return "drug-bug-mismatch" }
func (c *DrugBugMismatchCheck) Group() Group { return GroupMedical }

func (c *DrugBugMismatchCheck) Run(in *Input) []string {
	stem := in.Question.Stem
	var issues []string
	if textmatch.Occurs(stem, "mrsa") && textmatch.AnyOccurs(stem, in.Rules.Phrases(lexicon.MRSABetaLactams)) {
		issues = append(issues, "MRSA mentioned with beta-lactam antibiotics that would be ineffective")
	}
	if textmatch.Occurs(stem, "esbl") && textmatch.AnyOccurs(stem, in.Rules.Phrases(lexicon.ESBLCephalosporins)) {
		issues = append(issues, "ESBL mentioned with cephalosporins that would be ineffective")
	}
	return issues
}

// dosePattern matches an integer followed by a dose unit. Gram spellings
// "g", "gm", "gram" and "grams" are accepted; the trailing boundary keeps
// "1 gentamicin" from reading as one gram.
var dosePattern = regexp.MustCompile(`(\d+)\s*(mg|g(?:rams?|m)?|units)\b`)

// DosageCheck flags an implausibly high dose. Only the first dose in the
// stem is examined.
type DosageCheck struct{}

func (c *DosageCheck) Name() string { return "dosage" }
func (c *DosageCheck) Group() Group { return GroupMedical }

func (c *DosageCheck) Run(in *Input) []string {
	m := dosePattern.FindStringSubmatch(strings.ToLower(in.Question.Stem))
	if m == nil {
		return nil
	}
	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Only overflow is possible here; anything that long is too high.
		value = math.MaxInt64
	}
	unit := m[2]
	if strings.HasPrefix(unit, "g") {
		unit = "g"
	}

	var limit int64
	switch unit {
	case "g":
		limit = in.Config.MaxDoseGrams
	case "mg":
		limit = in.Config.MaxDoseMilligrams
	default:
		return nil
	}
	if value > limit {
		return []string{fmt.Sprintf("Unusually high dose: %s%s", m[1], unit)}
	}
	return nil
}
