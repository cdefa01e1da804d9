package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasEveryEntry(t *testing.T) {
	names := []Name{
		BeginnerKeywords, IntermediateKeywords, AdvancedKeywords,
		ComplexConditions, BasicConditions,
		AntibioticNames, PathogenNames, ResistanceMechanisms, ClinicalTerms,
		AntibioticContext, PathogenContext, ResistanceContext, ClinicalContext,
		MRSABetaLactams, ESBLCephalosporins, AmbiguousMarkers, CausalConnectives,
		BeginnerForbiddenTerms, BasicTerms, AdvancedIndicators,
		MRSATherapy, ESBLTherapy, VRETherapy,
	}
	rs := Default()
	for _, n := range names {
		assert.NotEmpty(t, rs.Phrases(n), "entry %s", n)
	}
	assert.Len(t, rs.Entries(), len(names))
	assert.Equal(t, Version, rs.Version())
}

func TestDifficultyLexiconsAreDisjoint(t *testing.T) {
	rs := Default()
	seen := map[string]Name{}
	for _, n := range []Name{BeginnerKeywords, IntermediateKeywords, AdvancedKeywords} {
		for _, p := range rs.Phrases(n) {
			prev, dup := seen[p]
			assert.False(t, dup, "phrase %q in both %s and %s", p, prev, n)
			seen[p] = n
		}
	}
}

func TestPhrases_ReturnsCopy(t *testing.T) {
	rs := Default()
	p := rs.Phrases(AmbiguousMarkers)
	p[0] = "mutated"
	assert.Equal(t, "maybe", rs.Phrases(AmbiguousMarkers)[0])
}

func TestPhrases_UnknownEntry(t *testing.T) {
	assert.Nil(t, Default().Phrases("nope"))
	_, ok := Default().Lookup("nope")
	assert.False(t, ok)
}

func TestNew_RejectsBadVersion(t *testing.T) {
	_, err := New("1.0", nil)
	require.Error(t, err)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New("v1.0.0", []Entry{{Name: "a"}, {Name: "a"}})
	require.Error(t, err)
}

func TestExtend(t *testing.T) {
	base := Default()
	ext, err := base.Extend(map[Name][]string{
		AmbiguousMarkers: {"perhaps", "maybe", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"maybe", "possibly", "sometimes", "often", "perhaps"}, ext.Phrases(AmbiguousMarkers))
	assert.NotContains(t, base.Phrases(AmbiguousMarkers), "perhaps", "base must not change")
	assert.Equal(t, "v1.0.0+local", ext.Version())

	ok, err := ext.Satisfies("v1.0.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExtend_UnknownEntry(t *testing.T) {
	_, err := Default().Extend(map[Name][]string{"made_up": {"x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "made_up")
}

func TestExtend_NothingReturnsReceiver(t *testing.T) {
	base := Default()
	ext, err := base.Extend(nil)
	require.NoError(t, err)
	assert.Same(t, base, ext)
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		want    bool
		wantErr bool
	}{
		{"empty", "", true, false},
		{"equal", "v1.0.0", true, false},
		{"older", "v0.9.0", true, false},
		{"newer minor", "v1.1.0", false, false},
		{"newer major", "v2", false, false},
		{"invalid", "latest", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default().Satisfies(tt.min)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
