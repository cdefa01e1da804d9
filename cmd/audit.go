package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathoquiz/quizaudit/internal/audit"
	"github.com/pathoquiz/quizaudit/internal/batch"
	"github.com/pathoquiz/quizaudit/internal/question"
	"github.com/pathoquiz/quizaudit/internal/report"
)

var auditCmd = &cobra.Command{
	Use:   "audit FILE...",
	Short: "Audit question banks and print a quality report",
	Long: `Audit runs every quality check over each question bank (.json, .yaml, .yml
or a .js module exporting an array) and prints a report. With more than one
file the report starts with combined totals.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		workers, _ := cmd.Flags().GetInt("workers")
		maxIssues, _ := cmd.Flags().GetInt("max-issues")
		strict, _ := cmd.Flags().GetBool("strict")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}
		if workers == 0 {
			workers = state.cfg.Workers
		}

		rules, err := state.cfg.Ruleset()
		if err != nil {
			return err
		}
		runner := batch.NewRunner(audit.New(rules, state.cfg.AuditConfig()), batch.Options{
			Workers: workers,
			Logger:  state.log,
		})

		files := make([]batch.FileReport, 0, len(args))
		for _, path := range args {
			qs, err := question.Load(path)
			if err != nil {
				if len(args) == 1 {
					return err
				}
				if errors.Is(err, question.ErrNoQuestions) {
					state.log.Warnw("no questions found, skipping", "file", path)
				} else {
					state.log.Warnw("cannot load file, skipping", "file", path, "error", err)
				}
				continue
			}

			rep, err := runner.Run(cmd.Context(), qs)
			if err != nil {
				return err
			}
			state.log.Infow("file audited", "file", path, "questions", rep.Total, "pass_rate", rep.PassRate, "issues", len(rep.Issues))
			files = append(files, batch.FileReport{Path: path, Report: rep})
		}
		if len(files) == 0 {
			return errors.New("no questions loaded from any file")
		}

		w, styled, closeOut, err := openOutput(cmd, outPath)
		if err != nil {
			return err
		}
		defer closeOut()
		opts := report.Options{Styled: styled && !noColor && format == "text", MaxIssues: maxIssues}

		combined := batch.Combine(files)
		if err := writeAuditReport(w, format, len(args) == 1, combined, opts); err != nil {
			return err
		}

		if strict && combined.Failed > 0 {
			return fmt.Errorf("%d of %d questions have issues", combined.Failed, combined.Total)
		}
		return nil
	},
}

// writeAuditReport writes the single file's report when single is set,
// otherwise the combined report with files in argument order.
func writeAuditReport(w io.Writer, format string, single bool, combined batch.Combined, opts report.Options) error {
	if single {
		rep := combined.Files[0].Report
		if format == "json" {
			return report.JSON(w, rep)
		}
		return report.Text(w, rep, opts)
	}
	if format == "json" {
		return report.JSON(w, combined)
	}
	return report.CombinedText(w, combined, opts)
}

// openOutput returns the report destination: the --out file, or stdout.
// styled is true only for stdout attached to a terminal.
func openOutput(cmd *cobra.Command, path string) (w io.Writer, styled bool, closeFn func(), err error) {
	if path == "" {
		out := cmd.OutOrStdout()
		f, ok := out.(*os.File)
		return out, ok && isTerminal(f), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, false, nil, fmt.Errorf("create output: %w", err)
	}
	return f, false, func() {
		if err := f.Close(); err != nil {
			state.log.Warnw("close output", "file", path, "error", err)
		}
	}, nil
}

func init() {
	auditCmd.Flags().String("format", "text", "Report format: text or json")
	auditCmd.Flags().StringP("out", "o", "", "Write the report to this file instead of stdout")
	auditCmd.Flags().Int("workers", 0, "Questions audited concurrently (default from config)")
	auditCmd.Flags().Int("max-issues", report.DefaultMaxIssues, "Failing questions listed per file in text reports (-1 for all)")
	auditCmd.Flags().Bool("strict", false, "Exit non-zero when any question has issues")
	auditCmd.Flags().Bool("no-color", false, "Disable terminal colours")
}
