package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "List the phrase tables used by the classifier and auditor",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("phrases")

		rules, err := state.cfg.Ruleset()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Lexicon %s\n\n", rules.Version())
		fmt.Fprintf(out, "%-26s  %7s  %s\n", "Name", "Phrases", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		entries := rules.Entries()
		for _, e := range entries {
			fmt.Fprintf(out, "%-26s  %7d  %s\n", e.Name, len(e.Phrases), e.Description)
			if verbose {
				fmt.Fprintf(out, "%-26s  %7s  %s\n", "", "", strings.Join(e.Phrases, ", "))
			}
		}

		fmt.Fprintf(out, "\n%d entries\n", len(entries))
		return nil
	},
}

func init() {
	lexiconCmd.Flags().Bool("phrases", false, "Also print every phrase")
}
