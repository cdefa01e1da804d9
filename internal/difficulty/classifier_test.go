package difficulty

import (
	"testing"

	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/pathoquiz/quizaudit/internal/question"
)

func TestClassify_CommunityAcquiredPneumonia(t *testing.T) {
	got := Classify(
		"What is the most appropriate first-line empiric treatment for a 45-year-old with typical community-acquired pneumonia?",
		"Ceftriaxone is recommended because it covers the most common respiratory pathogens.",
		"Respiratory",
	)
	if got != question.Beginner {
		t.Errorf("got %q, want %q", got, question.Beginner)
	}
}

func TestClassify_AdvancedKeywordAlone(t *testing.T) {
	// One advanced phrase is worth 2, which is enough on its own.
	got := Classify("Management of cerebritis in an adult", "", "Other")
	if got != question.Advanced {
		t.Errorf("got %q, want %q", got, question.Advanced)
	}
}

func TestClassify_ComplexConditionBeatsBeginnerScore(t *testing.T) {
	got := Classify(
		"What is the recommended first-line empiric regimen for meningitis?",
		"Standard empiric coverage.",
		"Other",
	)
	if got != question.Advanced {
		t.Errorf("got %q, want %q (complex condition takes priority)", got, question.Advanced)
	}
}

func TestClassify_IntermediateWithoutBasicCondition(t *testing.T) {
	got := Classify("When should you switch to oral antibiotics?", "", "Other")
	if got != question.Intermediate {
		t.Errorf("got %q, want %q", got, question.Intermediate)
	}
}

func TestClassify_SingleIntermediateWithBasicConditionIsBeginner(t *testing.T) {
	// intermediate=1 but a basic condition is present, so the intermediate
	// rule does not fire and the basic condition makes it beginner.
	got := Classify("When should you switch to oral antibiotics for cellulitis?", "", "Other")
	if got != question.Beginner {
		t.Errorf("got %q, want %q", got, question.Beginner)
	}
}

func TestClassify_TwoIntermediateBeatBasicCondition(t *testing.T) {
	got := Classify(
		"What duration of therapy applies after culture results for pneumonia?",
		"",
		"Other",
	)
	if got != question.Intermediate {
		t.Errorf("got %q, want %q", got, question.Intermediate)
	}
}

func TestClassify_LiteralRules(t *testing.T) {
	tests := []struct {
		name        string
		stem        string
		explanation string
		want        question.Difficulty
	}{
		{
			name:        "specific choice and duration is advanced",
			stem:        "Pick a regimen",
			explanation: "The specific choice and duration of therapy should be individualised.",
			want:        question.Advanced,
		},
		{
			name:        "guided by culture plus depending on",
			stem:        "Pick a regimen",
			explanation: "Therapy is guided by culture data, depending on local patterns.",
			want:        question.Intermediate,
		},
		{
			name:        "consider in stem",
			stem:        "Which agent would you consider here?",
			explanation: "",
			want:        question.Intermediate,
		},
		{
			name:        "consider only in explanation does not count",
			stem:        "Pick a regimen",
			explanation: "Consider local resistance.",
			want:        question.Beginner,
		},
		{
			name:        "empiric recommendations",
			stem:        "Pick a regimen",
			explanation: "These are empiric recommendations for adults.",
			want:        question.Beginner,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.stem, tt.explanation, "Other")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_CategoryDefaults(t *testing.T) {
	// No lexicon or condition hits, so the category table decides.
	stem := "Pick the right answer for this patient"
	explanation := "The right answer follows from the history."
	tests := []struct {
		category string
		want     question.Difficulty
	}{
		{"Central Nervous System", question.Advanced},
		{"bone/joint", question.Advanced},
		{"Bloodstream Infection", question.Advanced},
		{"Skin and Soft Tissue", question.Intermediate},
		{"RESPIRATORY", question.Intermediate},
		{"Genitourinary", question.Intermediate},
		{"Ophthalmologic", question.Beginner},
		{"", question.Beginner},
		// Only the exact lowercase names are in the table.
		{"Bloodstream Infection in Nonneonates", question.Beginner},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Classify(stem, explanation, tt.category)
			if got != tt.want {
				t.Errorf("category %q: got %q, want %q", tt.category, got, tt.want)
			}
			if d := CategoryDefault(tt.category); d != tt.want {
				t.Errorf("CategoryDefault(%q) = %q, want %q", tt.category, d, tt.want)
			}
		})
	}
}

func TestClassify_WholeWordMatching(t *testing.T) {
	// "typically" must not count as "typical"; "utility" must not count as "uti".
	got := Classify("This typically has utility for the patient", "", "Genitourinary")
	if got != question.Intermediate {
		t.Errorf("got %q, want category default %q", got, question.Intermediate)
	}
}

func TestExplain_ReportsRuleAndTally(t *testing.T) {
	c := New(lexicon.Default())
	d := c.Explain("Brain abscess after inadequate débridement", "", "Other")
	if d.Label != question.Advanced {
		t.Errorf("got %q, want %q", d.Label, question.Advanced)
	}
	if d.Rule != "advanced-score" {
		t.Errorf("got rule %q, want advanced-score", d.Rule)
	}
	if d.Tally.Advanced != 4 {
		t.Errorf("got advanced score %d, want 4", d.Tally.Advanced)
	}
	if len(d.Tally.Matched) != 2 {
		t.Errorf("got matched %v, want 2 phrases", d.Tally.Matched)
	}

	d = c.Explain("Nothing relevant", "", "Respiratory")
	if d.Rule != "category-default" {
		t.Errorf("got rule %q, want category-default", d.Rule)
	}
}

func TestScore_PhraseCountsOnceAcrossBothTexts(t *testing.T) {
	c := New(lexicon.Default())
	tally := c.Score("first-line first-line", "first-line")
	if tally.Beginner != 1 {
		t.Errorf("got beginner score %d, want 1", tally.Beginner)
	}
}

func TestScore_ConditionFlags(t *testing.T) {
	c := New(lexicon.Default())
	tally := c.Score("Otitis media", "complicated by mastoiditis")
	if !tally.ComplexCondition || !tally.BasicCondition {
		t.Errorf("got complex=%v basic=%v, want both true", tally.ComplexCondition, tally.BasicCondition)
	}
}

func TestScore_DoesNotShareState(t *testing.T) {
	c := New(lexicon.Default())
	a := c.Score("cerebritis", "")
	b := c.Score("typical", "")
	if b.Advanced != 0 || len(b.Matched) != 1 {
		t.Errorf("second tally leaked state from first: %+v", b)
	}
	if a.Advanced != 2 {
		t.Errorf("first tally changed: %+v", a)
	}
}

func TestNew_ExtendedLexicon(t *testing.T) {
	rs, err := lexicon.Default().Extend(map[lexicon.Name][]string{
		lexicon.AdvancedKeywords: {"necrotizing fasciitis"},
	})
	if err != nil {
		t.Fatal(err)
	}
	c := New(rs)
	if got := c.Classify("Suspected necrotizing fasciitis", "", "Other"); got != question.Advanced {
		t.Errorf("got %q, want %q", got, question.Advanced)
	}
	if got := Classify("Suspected necrotizing fasciitis", "", "Other"); got != question.Beginner {
		t.Errorf("default classifier picked up extension: got %q", got)
	}
}

func TestClassifyAll(t *testing.T) {
	in := []question.Question{
		{Stem: "Which of the following is a common pathogen in cellulitis?", Category: "Skin"},
		{Stem: "Bacterial meningitis management", Category: "CNS", Difficulty: question.Beginner},
		{Stem: "Nothing here", Category: "Respiratory"},
	}
	out, dist := New(lexicon.Default()).ClassifyAll(in)

	want := []question.Difficulty{question.Beginner, question.Advanced, question.Intermediate}
	for i, w := range want {
		if out[i].Difficulty != w {
			t.Errorf("question %d: got %q, want %q", i, out[i].Difficulty, w)
		}
	}
	if in[0].Difficulty != "" || in[1].Difficulty != question.Beginner {
		t.Error("input questions were modified")
	}
	if dist[question.Beginner] != 1 || dist[question.Intermediate] != 1 || dist[question.Advanced] != 1 {
		t.Errorf("unexpected distribution %v", dist)
	}
	if dist.Total() != 3 {
		t.Errorf("got total %d, want 3", dist.Total())
	}
}

func TestClassifyAll_EmptyDistributionHasAllLabels(t *testing.T) {
	_, dist := New(lexicon.Default()).ClassifyAll(nil)
	if len(dist) != 3 {
		t.Errorf("got %d labels, want 3", len(dist))
	}
	if p := dist.Percent(question.Advanced); p != 0 {
		t.Errorf("got percent %f on empty distribution, want 0", p)
	}
}
