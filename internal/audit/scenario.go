package audit

import (
	"fmt"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
	"github.com/pathoquiz/quizaudit/internal/textmatch"
)

// DifficultyFitCheck compares the declared label with the terminology used.
type DifficultyFitCheck struct{}

func (c *DifficultyFitCheck) Name() string { return "difficulty-fit" }
func (c *DifficultyFitCheck) Group() Group { return GroupDifficulty }

func (c *DifficultyFitCheck) Run(in *Input) []string {
	q := in.Question
	switch q.Difficulty {
	case question.Beginner:
		var issues []string
		for _, term := range textmatch.MatchAll(in.Rules.Phrases(lexicon.BeginnerForbiddenTerms), q.Stem, q.Explanation) {
			issues = append(issues, fmt.Sprintf("Beginner question contains advanced term: '%s'", term))
		}
		return issues
	case question.Advanced:
		if textmatch.AnyOccurs(q.Stem, in.Rules.Phrases(lexicon.BasicTerms)) &&
			!textmatch.AnyOccurs(q.Stem, in.Rules.Phrases(lexicon.AdvancedIndicators)) {
			return []string{"Advanced question may be too simple"}
		}
	}
	return nil
}

// scenarioRules list, per resistant organism, the agents its scenario
// explanation must name.
var scenarioRules = []struct {
	marker  string
	therapy lexicon.Name
	issue   string
}{
	{"mrsa", lexicon.MRSATherapy, "MRSA scenario should mention appropriate anti-MRSA therapy"},
	{"esbl", lexicon.ESBLTherapy, "ESBL scenario should mention carbapenem therapy"},
	{"vre", lexicon.VRETherapy, "VRE scenario should mention appropriate anti-VRE therapy"},
}

// ResistanceScenarioCheck applies only to the resistance-scenario category.
type ResistanceScenarioCheck struct{}

func (c *ResistanceScenarioCheck) Name() string { return "resistance-scenario" }
func (c *ResistanceScenarioCheck) Group() Group { return GroupResistance }

func (c *ResistanceScenarioCheck) Run(in *Input) []string {
	q := in.Question
	if q.Category != in.Config.ResistanceCategory {
		return nil
	}
	var issues []string
	for _, r := range scenarioRules {
		if !textmatch.Occurs(q.Stem, r.marker) {
			continue
		}
		if !textmatch.AnyOccurs(q.Explanation, in.Rules.Phrases(r.therapy)) {
			issues = append(issues, r.issue)
		}
	}
	return issues
}
