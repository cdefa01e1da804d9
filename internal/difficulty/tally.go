package difficulty

// Tally is the per-question score record. It is built by folding rule
// matches into a fresh value and is never shared between questions.
type Tally struct {
	Advanced         int
	Intermediate     int
	Beginner         int
	ComplexCondition bool
	BasicCondition   bool

	// Matched lists the phrases that contributed, in rule order.
	Matched []string
}

// add returns a new Tally with r applied.
func (t Tally) add(r PhraseRule) Tally {
	switch r.Bucket {
	case BucketAdvanced:
		t.Advanced += r.Weight
	case BucketIntermediate:
		t.Intermediate += r.Weight
	case BucketBeginner:
		t.Beginner += r.Weight
	}
	matched := make([]string, len(t.Matched), len(t.Matched)+1)
	copy(matched, t.Matched)
	t.Matched = append(matched, r.Phrase)
	return t
}
