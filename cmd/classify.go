package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathoquiz/quizaudit/internal/difficulty"
	"github.com/pathoquiz/quizaudit/internal/question"
	"github.com/pathoquiz/quizaudit/internal/report"
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILE",
	Short: "Label every question with a difficulty tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explain, _ := cmd.Flags().GetBool("explain")
		outPath, _ := cmd.Flags().GetString("out")

		qs, err := question.Load(args[0])
		if err != nil {
			return err
		}
		rules, err := state.cfg.Ruleset()
		if err != nil {
			return err
		}
		c := difficulty.New(rules)

		out := cmd.OutOrStdout()
		if explain {
			for i, q := range qs {
				d := c.Explain(q.Stem, q.Explanation, q.Category)
				t := d.Tally
				changed := ""
				if q.Difficulty != "" && q.Difficulty != d.Label {
					changed = fmt.Sprintf(" (was %s)", q.Difficulty)
				}
				fmt.Fprintf(out, "Q%-4d %-12s %-18s adv=%d int=%d beg=%d complex=%t basic=%t%s\n",
					i+1, d.Label, d.Rule, t.Advanced, t.Intermediate, t.Beginner,
					t.ComplexCondition, t.BasicCondition, changed)
				if len(t.Matched) > 0 {
					fmt.Fprintf(out, "      matched: %s\n", strings.Join(t.Matched, ", "))
				}
			}
			fmt.Fprintln(out)
		}

		labeled, dist := c.ClassifyAll(qs)
		f, ok := out.(*os.File)
		if err := report.Classification(out, dist, report.Options{Styled: ok && isTerminal(f)}); err != nil {
			return err
		}
		state.log.Debugw("bank classified", "file", args[0], "questions", len(qs))

		if outPath == "" {
			return nil
		}
		return writeBank(outPath, labeled)
	},
}

// writeBank writes qs to path in the format its extension names.
func writeBank(path string, qs []question.Question) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := question.Write(f, qs, question.FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	classifyCmd.Flags().Bool("explain", false, "Print the score tally and deciding rule per question")
	classifyCmd.Flags().StringP("out", "o", "", "Write the labeled bank to this file (.json, .yaml or .js)")
}
