package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathoquiz/quizaudit/internal/question"
)

func TestStandardize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GU", "Genitourinary"},
		{"gu", "Genitourinary"},
		{" Resp ", "Respiratory"},
		{"CNS", "Central Nervous System"},
		{"Skin", "Skin and Soft Tissue Infections"},
		{"Joint", "Bone/Joint"},
		{"ENT", "Ear, Nose, and Throat"},
		{"Abdominal", "Intra-abdominal"},
		{"Bone/Joint", "Bone/Joint"},
		{"Antibiotic Resistance Scenarios", "Antibiotic Resistance Scenarios"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Standardize(tt.in))
		})
	}
}

func TestExpandAbbreviations(t *testing.T) {
	n := Default()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drug", "Start Vanc now", "Start Vancomycin now"},
		{"drug any case", "start vanc now", "start Vancomycin now"},
		{"word prefix untouched", "Vancomycin trough", "Vancomycin trough"},
		{"combination", "TMP-SMX or TMP/SMX", "Trimethoprim-sulfamethoxazole or Trimethoprim-sulfamethoxazole"},
		{"organism", "E coli UTI", "Escherichia coli urinary tract infection"},
		{"dosing", "Cefazolin 2 g IV q8h", "Cefazolin 2 g intravenous every 8 hours"},
		{"lowercase word kept", "abdominal gas and po intake", "abdominal gas and po intake"},
		{"caps organism", "GAS pharyngitis", "Group A Streptococcus pharyngitis"},
		{"nothing", "No shorthand here", "No shorthand here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ExpandAbbreviations(tt.in))
		})
	}
}

func TestConditionID(t *testing.T) {
	assert.Equal(t, "pneumonia", ConditionID("Adult with pneumonia and sepsis", "Respiratory"))
	assert.Equal(t, "uti", ConditionID("Woman with urinary tract infection", ""))
	assert.Equal(t, "cns_infection", ConditionID("Fever and headache", "Central Nervous System"))
	assert.Equal(t, GeneralCondition, ConditionID("Fever", "Other"))
}

func TestNormalize(t *testing.T) {
	in := question.Question{
		Stem:        "What is the first-line empiric treatment for CAP in an adult?",
		Options:     []string{"Rocephin", "Vanc", "Cipro"},
		Explanation: "Ceftriaxone covers common pathogens.",
		Category:    "Resp",
	}

	out, changes := Default().Normalize(in)

	assert.Equal(t, "Respiratory", out.Category)
	assert.Equal(t, "What is the first-line empiric treatment for community-acquired pneumonia in an adult?", out.Stem)
	assert.Equal(t, []string{"Ceftriaxone", "Vancomycin", "Ciprofloxacin"}, out.Options)
	assert.Equal(t, in.Explanation, out.Explanation)
	assert.Equal(t, question.Beginner, out.Difficulty)
	assert.Equal(t, "pneumonia", out.ConditionID)

	// Input is untouched.
	assert.Equal(t, "Vanc", in.Options[1])
	assert.Equal(t, "Resp", in.Category)

	fields := make([]string, len(changes))
	for i, c := range changes {
		fields[i] = c.Field
	}
	assert.Equal(t, []string{"category", "question", "option 1", "option 2", "option 3", "difficulty", "conditionId"}, fields)
	assert.Equal(t, "category standardized from 'Resp' to 'Respiratory'", changes[0].String())
	assert.Equal(t, "difficulty set to 'beginner'", changes[5].String())
}

func TestNormalize_KeepsExistingLabels(t *testing.T) {
	in := question.Question{
		Stem:        "Which agent treats MRSA bacteremia?",
		Category:    "Bloodstream Infection in Nonneonates",
		Difficulty:  question.Intermediate,
		ConditionID: "mrsa_bacteremia",
	}
	out, changes := Default().Normalize(in)
	assert.Equal(t, in, out)
	assert.Empty(t, changes)
}

func TestNormalizeAll_IndexesChanges(t *testing.T) {
	qs := []question.Question{
		{Stem: "x", Category: "Other", Difficulty: question.Beginner, ConditionID: "c"},
		{Stem: "x", Category: "GU", Difficulty: question.Beginner, ConditionID: "c"},
	}
	out, changes := Default().NormalizeAll(qs)
	require.Len(t, out, 2)
	require.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].Index)
	assert.Equal(t, "Question 2: category standardized from 'GU' to 'Genitourinary'", changes[0].String())
}

func TestNew_NilClassifierLeavesDifficulty(t *testing.T) {
	n := New(nil, nil)
	out, _ := n.Normalize(question.Question{Stem: "Vanc", Category: "Other"})
	assert.Equal(t, question.Difficulty(""), out.Difficulty)
	assert.Equal(t, "Vanc", out.Stem)
	assert.Equal(t, GeneralCondition, out.ConditionID)
}
