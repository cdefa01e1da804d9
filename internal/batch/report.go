package batch

import (
	"sort"

	"github.com/pathoquiz/quizaudit/internal/question"
)

// Unknown labels a question with no difficulty or no category.
const Unknown = "unknown"

// ExcerptLen is the number of stem characters kept in an issue entry.
const ExcerptLen = 100

// Recommendation texts, in the order they are emitted.
const (
	RecommendReview     = "Consider reviewing questions with issues for medical accuracy"
	RecommendDifficulty = "Consider adding questions of varying difficulty levels"
	RecommendCategories = "Consider adding questions covering more clinical categories"
)

// Recommendation thresholds.
const (
	MinPassRate           = 80.0
	MinDifficultyLabels   = 3
	MinDistinctCategories = 5
)

// QuestionIssues lists the findings for one failing question.
type QuestionIssues struct {
	Index    int      `json:"question_index"` // 1-based
	Question string   `json:"question"`
	Issues   []string `json:"issues"`
}

// Report summarizes one batch audit.
type Report struct {
	RunID                  string           `json:"run_id"`
	Total                  int              `json:"total_questions"`
	Passed                 int              `json:"passed"`
	Failed                 int              `json:"failed"`
	Issues                 []QuestionIssues `json:"issues"`
	DifficultyDistribution map[string]int   `json:"difficulty_distribution"`
	CategoryDistribution   map[string]int   `json:"category_distribution"`
	PassRate               float64          `json:"pass_rate"`
	Recommendations        []string         `json:"recommendations"`
}

// FailRate is 100 minus PassRate, or 0 for an empty batch.
func (r *Report) FailRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 - r.PassRate
}

// Percent returns count as a percentage of Total, or 0 for an empty batch.
func (r *Report) Percent(count int) float64 {
	return percent(count, r.Total)
}

// DifficultyLabels returns the difficulty keys in display order: the three
// known tiers first, then anything else alphabetically.
func (r *Report) DifficultyLabels() []string {
	var out []string
	for _, d := range question.Difficulties {
		if _, ok := r.DifficultyDistribution[string(d)]; ok {
			out = append(out, string(d))
		}
	}
	var rest []string
	for k := range r.DifficultyDistribution {
		if !question.Difficulty(k).Valid() {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Categories returns the category keys by descending count, then name.
func (r *Report) Categories() []string {
	return sortedByCount(r.CategoryDistribution)
}

func sortedByCount(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
