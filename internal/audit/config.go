package audit

// ResistanceScenarioCategory is the category whose questions get the
// resistance-scenario checks.
const ResistanceScenarioCategory = "Antibiotic Resistance Scenarios"

// Config holds the auditor's thresholds.
type Config struct {
	// MinStemWords and MaxStemWords bound the stem word count (inclusive).
	MinStemWords int
	MaxStemWords int

	// MinExplanationWords is the shortest acceptable explanation.
	MinExplanationWords int

	// MinOptions and MaxOptions bound the option count (inclusive).
	MinOptions int
	MaxOptions int

	// SimilarityThreshold flags option pairs whose token-set similarity
	// is at or above this value.
	SimilarityThreshold float64

	// MaxDoseGrams and MaxDoseMilligrams flag a stem dose strictly above
	// the limit.
	MaxDoseGrams      int64
	MaxDoseMilligrams int64

	// ResistanceCategory selects questions for the resistance-scenario
	// group. Compared verbatim.
	ResistanceCategory string
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinStemWords:        10,
		MaxStemWords:        100,
		MinExplanationWords: 15,
		MinOptions:          3,
		MaxOptions:          5,
		SimilarityThreshold: 0.8,
		MaxDoseGrams:        10,
		MaxDoseMilligrams:   5000,
		ResistanceCategory:  ResistanceScenarioCategory,
	}
}
