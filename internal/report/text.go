// Package report renders batch audit results for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/pathoquiz/quizaudit/internal/batch"
	"github.com/pathoquiz/quizaudit/internal/difficulty"
	"github.com/pathoquiz/quizaudit/internal/question"
)

// TimeLayout is the format of the "Generated on" line.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultMaxIssues is how many failing questions the text report lists.
const DefaultMaxIssues = 10

const (
	barWidth      = 20
	separatorLine = "=================================================="
	noIssuesLine  = "No issues found! All questions passed quality checks."
	excellentLine = "Content quality is excellent - no specific recommendations"
)

// Options controls text rendering.
type Options struct {
	// Styled enables terminal colours.
	Styled bool

	// Now stamps the report. Nil uses time.Now.
	Now func() time.Time

	// MaxIssues caps the listed failing questions. Zero uses
	// DefaultMaxIssues; negative lists all.
	MaxIssues int
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) maxIssues() int {
	if o.MaxIssues == 0 {
		return DefaultMaxIssues
	}
	return o.MaxIssues
}

// Text writes the report for one question bank.
func Text(w io.Writer, rep *batch.Report, opts Options) error {
	var b strings.Builder
	s := styler{on: opts.Styled}

	b.WriteString("\n" + s.heading("CONTENT QUALITY TEST REPORT") + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n", opts.now().Format(TimeLayout))
	writeBody(&b, s, rep, opts)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBody(b *strings.Builder, s styler, rep *batch.Report, opts Options) {
	b.WriteString("\n" + s.heading("SUMMARY") + "\n")
	fmt.Fprintf(b, "Total Questions Tested: %d\n", rep.Total)
	fmt.Fprintf(b, "Passed: %s (%.1f%%)\n", s.pass(fmt.Sprint(rep.Passed)), rep.PassRate)
	fmt.Fprintf(b, "Failed: %s (%.1f%%)\n", s.fail(fmt.Sprint(rep.Failed)), rep.FailRate())
	fmt.Fprintf(b, "Pass rate: %s %s\n", s.bar(rep.PassRate, barWidth), s.rate(rep.PassRate))

	b.WriteString("\n" + s.heading("DIFFICULTY DISTRIBUTION") + "\n")
	for _, label := range rep.DifficultyLabels() {
		n := rep.DifficultyDistribution[label]
		fmt.Fprintf(b, "%s: %d (%.1f%%)\n", capitalize(label), n, rep.Percent(n))
	}

	b.WriteString("\n" + s.heading("CATEGORY DISTRIBUTION") + "\n")
	for _, cat := range rep.Categories() {
		n := rep.CategoryDistribution[cat]
		fmt.Fprintf(b, "%s: %d (%.1f%%)\n", cat, n, rep.Percent(n))
	}

	b.WriteString("\n" + s.heading("IDENTIFIED ISSUES") + "\n")
	if len(rep.Issues) == 0 {
		b.WriteString(s.pass(noIssuesLine) + "\n")
	} else {
		shown := rep.Issues
		if limit := opts.maxIssues(); limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		for _, qi := range shown {
			fmt.Fprintf(b, "\nQuestion %d: %s\n", qi.Index, qi.Question)
			for _, issue := range qi.Issues {
				fmt.Fprintf(b, "  %s %s\n", s.fail("•"), issue)
			}
		}
		if rest := len(rep.Issues) - len(shown); rest > 0 {
			b.WriteString("\n" + s.dim(fmt.Sprintf("... and %d more questions with issues", rest)) + "\n")
		}
	}

	b.WriteString("\n" + s.heading("RECOMMENDATIONS") + "\n")
	if len(rep.Recommendations) == 0 {
		b.WriteString("• " + excellentLine + "\n")
	}
	for _, rec := range rep.Recommendations {
		b.WriteString("• " + rec + "\n")
	}
}

// CombinedText writes the multi-file report: overall totals followed by
// each file's report.
func CombinedText(w io.Writer, c batch.Combined, opts Options) error {
	var b strings.Builder
	s := styler{on: opts.Styled}
	now := opts.now().Format(TimeLayout)

	b.WriteString("\n" + s.heading("COMPREHENSIVE CONTENT QUALITY REPORT") + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n", now)

	b.WriteString("\n" + s.heading("OVERALL SUMMARY") + "\n")
	fmt.Fprintf(&b, "Total Questions Across All Files: %d\n", c.Total)
	fmt.Fprintf(&b, "Total Passed: %s (%.1f%%)\n", s.pass(fmt.Sprint(c.Passed)), c.PassRate())
	fmt.Fprintf(&b, "Total Failed: %s (%.1f%%)\n", s.fail(fmt.Sprint(c.Failed)), c.FailRate())

	b.WriteString("\n" + s.heading("FILE-BY-FILE RESULTS") + "\n")
	for _, f := range c.Files {
		fmt.Fprintf(&b, "\n%s\n%s\n%s\n", separatorLine, s.render(headingStyle, strings.ToUpper(f.Path)), separatorLine)
		b.WriteString("\n" + s.heading("CONTENT QUALITY TEST REPORT") + "\n")
		fmt.Fprintf(&b, "Generated on: %s\n", now)
		writeBody(&b, s, f.Report, opts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Classification writes the difficulty label counts for a classified bank.
func Classification(w io.Writer, dist difficulty.Distribution, opts Options) error {
	var b strings.Builder
	s := styler{on: opts.Styled}

	b.WriteString(s.heading("DIFFICULTY CLASSIFICATION") + "\n")
	fmt.Fprintf(&b, "Total Questions: %d\n", dist.Total())
	for _, d := range question.Difficulties {
		pct := dist.Percent(d)
		fmt.Fprintf(&b, "%-13s %4d (%5.1f%%) %s\n", capitalize(string(d))+":", dist[d], pct, s.bar(pct, barWidth))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
