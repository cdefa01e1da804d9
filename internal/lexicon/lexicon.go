package lexicon

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/mod/semver"
)

// Version is the semantic version of the built-in phrase tables.
// Bump the minor version when phrases are added, the major version when
// phrases are removed or re-categorised.
const Version = "v1.0.0"

// Name identifies one phrase table.
type Name string

const (
	// Difficulty scoring.
	BeginnerKeywords     Name = "beginner_keywords"
	IntermediateKeywords Name = "intermediate_keywords"
	AdvancedKeywords     Name = "advanced_keywords"
	ComplexConditions    Name = "complex_conditions"
	BasicConditions      Name = "basic_conditions"

	// Medical accuracy.
	AntibioticNames        Name = "antibiotic_names"
	PathogenNames          Name = "pathogen_names"
	ResistanceMechanisms   Name = "resistance_mechanisms"
	ClinicalTerms          Name = "clinical_terms"
	AntibioticContext      Name = "antibiotic_context"
	PathogenContext        Name = "pathogen_context"
	ResistanceContext      Name = "resistance_context"
	ClinicalContext        Name = "clinical_context"
	MRSABetaLactams        Name = "mrsa_beta_lactams"
	ESBLCephalosporins     Name = "esbl_cephalosporins"
	AmbiguousMarkers       Name = "ambiguous_markers"
	CausalConnectives      Name = "causal_connectives"
	BeginnerForbiddenTerms Name = "beginner_forbidden_terms"
	BasicTerms             Name = "basic_terms"
	AdvancedIndicators     Name = "advanced_indicators"

	// Resistance scenarios.
	MRSATherapy Name = "mrsa_therapy"
	ESBLTherapy Name = "esbl_therapy"
	VRETherapy  Name = "vre_therapy"
)

// Entry is a named list of phrases belonging to one semantic category.
type Entry struct {
	Name        Name
	Description string
	Phrases     []string
}

// Ruleset is an immutable, versioned collection of phrase tables.
// A Ruleset is never mutated after construction and may be shared freely
// between goroutines.
type Ruleset struct {
	version string
	order   []Name
	entries map[Name]Entry
}

// New builds a Ruleset from entries. Entry order is preserved for
// iteration and for first-match lookups.
func New(version string, entries []Entry) (*Ruleset, error) {
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("lexicon version %q is not a valid semantic version", version)
	}
	rs := &Ruleset{
		version: version,
		order:   make([]Name, 0, len(entries)),
		entries: make(map[Name]Entry, len(entries)),
	}
	for _, e := range entries {
		if _, dup := rs.entries[e.Name]; dup {
			return nil, fmt.Errorf("duplicate lexicon entry %q", e.Name)
		}
		rs.order = append(rs.order, e.Name)
		rs.entries[e.Name] = Entry{
			Name:        e.Name,
			Description: e.Description,
			Phrases:     slices.Clone(e.Phrases),
		}
	}
	return rs, nil
}

var builtin *Ruleset

func init() {
	rs, err := New(Version, seedEntries)
	if err != nil {
		panic(err)
	}
	builtin = rs
}

// Default returns the built-in ruleset.
func Default() *Ruleset {
	return builtin
}

// Version returns the ruleset's semantic version.
func (r *Ruleset) Version() string {
	return r.version
}

// Phrases returns the phrases of the named entry in declaration order,
// or nil if the entry does not exist. The returned slice is a copy.
func (r *Ruleset) Phrases(name Name) []string {
	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	return slices.Clone(e.Phrases)
}

// Lookup returns a copy of the named entry.
func (r *Ruleset) Lookup(name Name) (Entry, bool) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	e.Phrases = slices.Clone(e.Phrases)
	return e, true
}

// Entries returns copies of every entry in declaration order.
func (r *Ruleset) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, n := range r.order {
		e, _ := r.Lookup(n)
		out = append(out, e)
	}
	return out
}

// Satisfies reports whether this ruleset is at least minVersion.
// An empty minVersion is always satisfied.
func (r *Ruleset) Satisfies(minVersion string) (bool, error) {
	if minVersion == "" {
		return true, nil
	}
	if !semver.IsValid(minVersion) {
		return false, fmt.Errorf("invalid lexicon version constraint %q", minVersion)
	}
	return semver.Compare(r.version, minVersion) >= 0, nil
}

// Extend returns a new Ruleset with extra phrases appended to existing
// entries. Phrases already present are skipped. Unknown entry names are an
// error. The receiver is left untouched.
func (r *Ruleset) Extend(extra map[Name][]string) (*Ruleset, error) {
	if len(extra) == 0 {
		return r, nil
	}

	names := make([]string, 0, len(extra))
	for n := range extra {
		names = append(names, string(n))
	}
	sort.Strings(names)
	for _, n := range names {
		if _, ok := r.entries[Name(n)]; !ok {
			return nil, fmt.Errorf("unknown lexicon entry %q", n)
		}
	}

	entries := r.Entries()
	for i := range entries {
		add, ok := extra[entries[i].Name]
		if !ok {
			continue
		}
		for _, p := range add {
			if p == "" || slices.Contains(entries[i].Phrases, p) {
				continue
			}
			entries[i].Phrases = append(entries[i].Phrases, p)
		}
	}

	return New(semver.Canonical(r.version)+"+local", entries)
}
