// Package batch audits a whole question bank and aggregates the results.
package batch

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pathoquiz/quizaudit/internal/audit"
	"github.com/pathoquiz/quizaudit/internal/question"
)

// Options controls a Runner.
type Options struct {
	// Workers is the number of questions audited at once. Values below 2
	// run sequentially.
	Workers int

	// Logger receives a per-run summary. Nil discards it.
	Logger *zap.SugaredLogger
}

// Runner audits question banks with a fixed Auditor.
type Runner struct {
	auditor *audit.Auditor
	workers int
	log     *zap.SugaredLogger
}

// NewRunner creates a Runner. A nil auditor uses audit.Default().
func NewRunner(a *audit.Auditor, opts Options) *Runner {
	if a == nil {
		a = audit.Default()
	}
	w := opts.Workers
	if w < 1 {
		w = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{auditor: a, workers: w, log: log}
}

// RunBatch audits qs sequentially with the built-in auditor.
func RunBatch(qs []question.Question) *Report {
	r, _ := NewRunner(nil, Options{}).Run(context.Background(), qs)
	return r
}

// Run audits every question and builds the report. Issue entries keep
// input order regardless of worker count. The only error is ctx's.
func (r *Runner) Run(ctx context.Context, qs []question.Question) (*Report, error) {
	findings, err := r.auditAll(ctx, qs)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:                  uuid.NewString(),
		Total:                  len(qs),
		Issues:                 []QuestionIssues{},
		DifficultyDistribution: map[string]int{},
		CategoryDistribution:   map[string]int{},
		Recommendations:        []string{},
	}
	for i, q := range qs {
		if len(findings[i]) == 0 {
			rep.Passed++
		} else {
			rep.Failed++
			rep.Issues = append(rep.Issues, QuestionIssues{
				Index:    i + 1,
				Question: q.Excerpt(ExcerptLen),
				Issues:   findings[i].Strings(),
			})
		}
		rep.DifficultyDistribution[labelOr(string(q.Difficulty))]++
		rep.CategoryDistribution[labelOr(q.Category)]++
	}
	rep.PassRate = percent(rep.Passed, rep.Total)
	rep.Recommendations = recommend(rep)

	r.log.Infow("batch audited",
		"run_id", rep.RunID,
		"total", rep.Total,
		"passed", rep.Passed,
		"failed", rep.Failed,
		"workers", r.workers,
	)
	return rep, nil
}

func (r *Runner) auditAll(ctx context.Context, qs []question.Question) ([]audit.Findings, error) {
	out := make([]audit.Findings, len(qs))

	if r.workers <= 1 || len(qs) < 2 {
		for i, q := range qs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = r.auditor.Audit(q)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range qs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns out[i].
			out[i] = r.auditor.Audit(qs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func recommend(rep *Report) []string {
	recs := []string{}
	if rep.PassRate < MinPassRate {
		recs = append(recs, RecommendReview)
	}
	if len(rep.DifficultyDistribution) < MinDifficultyLabels {
		recs = append(recs, RecommendDifficulty)
	}
	if len(rep.CategoryDistribution) < MinDistinctCategories {
		recs = append(recs, RecommendCategories)
	}
	return recs
}

func labelOr(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
