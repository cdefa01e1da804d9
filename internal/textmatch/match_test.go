package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccurs(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   bool
	}{
		{"exact", "meningitis", "meningitis", true},
		{"case insensitive", "Patient with MRSA", "mrsa", true},
		{"inside word", "ask the doctor", "or", false},
		{"prefix of word", "considerations apply", "consider", false},
		{"suffix of word", "undercover", "cover", false},
		{"multi word", "a Common Pathogen here", "common pathogen", true},
		{"hyphenated", "first-line therapy", "first-line", true},
		{"hyphen is a boundary", "non-empiric", "empiric", true},
		{"punctuation boundary", "treated (vancomycin).", "vancomycin", true},
		{"slash phrase", "for moderate/severe disease", "moderate/severe", true},
		{"digit run", "uti2", "uti", false},
		{"second occurrence qualifies", "doctor or nurse", "or", true},
		{"accented", "after inadequate débridement", "inadequate débridement", true},
		{"empty phrase", "anything", "", false},
		{"empty text", "", "as", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Occurs(tt.text, tt.phrase))
		})
	}
}

func TestOccursAny(t *testing.T) {
	assert.True(t, OccursAny("sepsis", "stem", "explanation mentions sepsis"))
	assert.False(t, OccursAny("sepsis", "stem", "explanation"))
	assert.False(t, OccursAny("sepsis"))
}

func TestAnyOccurs(t *testing.T) {
	assert.True(t, AnyOccurs("started on therapy", []string{"treatment", "therapy"}))
	assert.False(t, AnyOccurs("started on therapies", []string{"treatment", "therapy"}))
}

func TestCountMatches(t *testing.T) {
	got := CountMatches("Cellulitis and cellulitis again with sinusitis", []string{"cellulitis", "sinusitis", "uti"})
	assert.Equal(t, map[string]int{"cellulitis": 1, "sinusitis": 1}, got)

	empty := CountMatches("nothing here", []string{"uti"})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFirstMatch_UsesPhraseOrder(t *testing.T) {
	phrases := []string{"meningitis", "endocarditis"}
	got, ok := FirstMatch(phrases, "endocarditis first", "then meningitis")
	assert.True(t, ok)
	assert.Equal(t, "meningitis", got)

	_, ok = FirstMatch(phrases, "pharyngitis")
	assert.False(t, ok)
}

func TestMatchAll(t *testing.T) {
	got := MatchAll([]string{"maybe", "often", "sometimes"}, "sometimes it is maybe", "")
	assert.Equal(t, []string{"maybe", "sometimes"}, got)
	assert.Nil(t, MatchAll([]string{"maybe"}, "certainly"))
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 3, Frequency("as as, AS", "as"))
	assert.Equal(t, 0, Frequency("basis", "as"))
	assert.Equal(t, 2, Frequency("due to x, due to y", "due to"))
	assert.Equal(t, 0, Frequency("text", ""))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 5, WordCount(" one two\tthree\nfour  five "))
}
