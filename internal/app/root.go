// Package app contains the Cobra command tree for oh-my-claude-token.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "oh-my-claude-token",
	Short: "Token usage telemetry for Claude Code sessions",
	Long: `oh-my-claude-token reports token consumption for Claude Code. It reads
the locally persisted stats cache and (when invoked as a hook or status
line) the live session context, and renders daily budgets, remaining
tokens, and recent activity.

Run 'oh-my-claude-token' with no arguments for the full report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Diagnostics go to stderr only; stdout is reserved for
		// presenter output.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	RunE: runReport,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// applyColorPrefs disables styled output when asked to, when the config
// says so, or when stdout is not a terminal.
func applyColorPrefs(cfg *config.Config) {
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if flagNoColor || !cfg.Output.Color || !stdoutTTY {
		output.SetNoColor(true)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/oh-my-claude-token/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose diagnostics on stderr")
}
