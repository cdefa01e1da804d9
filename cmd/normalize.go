package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathoquiz/quizaudit/internal/difficulty"
	"github.com/pathoquiz/quizaudit/internal/normalize"
	"github.com/pathoquiz/quizaudit/internal/question"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Standardize categories and expand abbreviations",
	Long: `Normalize maps category aliases to canonical names, expands drug, organism
and dosing shorthand, and fills in missing difficulty labels and condition
ids. Questions with missing required fields or an out-of-range answer index
are reported but still written. The change log goes to stderr; the rewritten
bank is written to --out in the format its extension names, or as JSON to
stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		keepDifficulty, _ := cmd.Flags().GetBool("no-classify")

		qs, err := question.Load(args[0])
		if err != nil {
			return err
		}
		rules, err := state.cfg.Ruleset()
		if err != nil {
			return err
		}

		var c *difficulty.Classifier
		if !keepDifficulty {
			c = difficulty.New(rules)
		}
		normalized, changes := normalize.New(c, normalize.Abbreviations).NormalizeAll(qs)

		issues := normalize.ValidateAll(normalized)

		for _, ch := range changes {
			fmt.Fprintln(cmd.ErrOrStderr(), ch)
		}
		for _, is := range issues {
			fmt.Fprintln(cmd.ErrOrStderr(), is)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d questions, %d changes, %d validation issues\n", len(normalized), len(changes), len(issues))

		if outPath == "" {
			return question.Write(cmd.OutOrStdout(), normalized, question.FormatJSON)
		}
		return writeBank(outPath, normalized)
	},
}

func init() {
	normalizeCmd.Flags().StringP("out", "o", "", "Write the normalized bank to this file instead of stdout")
	normalizeCmd.Flags().Bool("no-classify", false, "Do not fill in missing difficulty labels")
}
