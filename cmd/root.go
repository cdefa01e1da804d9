package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pathoquiz/quizaudit/internal/config"
	"github.com/pathoquiz/quizaudit/internal/logging"
)

// appState is built once per invocation by the root PersistentPreRunE.
type appState struct {
	cfg config.Config
	log *zap.SugaredLogger
}

var state = appState{cfg: config.Default(), log: logging.Nop()}

var rootCmd = &cobra.Command{
	Use:           "quizaudit",
	Short:         "Classify and audit clinical quiz questions",
	Long:          "quizaudit labels multiple-choice clinical questions by difficulty and reports content-quality and medical-plausibility defects.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = state.log.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides "+config.EnvPath+" env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-mode", "", "Log format: dev or prod (overrides config)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config using --config (highest priority), then
// $QUIZAUDIT_CONFIG, then built-in defaults, and builds the logger.
func setup(cmd *cobra.Command) error {
	p, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.ResolvePath(p))
	if err != nil {
		return err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if mode, _ := cmd.Flags().GetString("log-mode"); mode != "" {
		cfg.Log.Mode = mode
	}
	log, err := logging.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}

	state = appState{cfg: cfg, log: log}
	log.Debugw("config loaded", "path", config.ResolvePath(p), "workers", cfg.Workers)
	return nil
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
