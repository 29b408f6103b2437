package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/output"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/watcher"
)

var (
	watchInterval string
	watchNotify   bool
	watchBudget   int
	watchQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor token usage and alert on budget burn",
	Long: `Run a foreground monitor that periodically re-reads the stats cache and
live session transcripts. Alerts are emitted when the daily budget is
exhausted, when usage crosses an urgency tier, or when tokens burn fast
between checks.

Examples:
  oh-my-claude-token watch                  # check every 2 minutes (ctrl-c to stop)
  oh-my-claude-token watch --interval 30s   # check more often
  oh-my-claude-token watch --budget 400000  # alert past 400K tokens/day
  oh-my-claude-token watch --notify         # also send desktop notifications`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInterval, "interval", "", "Check interval as duration string (e.g. 30s, 5m)")
	watchCmd.Flags().BoolVar(&watchNotify, "notify", false, "Send desktop notifications for alerts")
	watchCmd.Flags().IntVar(&watchBudget, "budget", 0, "Alert when today's total tokens exceed this count")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	intervalStr := watchInterval
	if intervalStr == "" {
		intervalStr = cfg.Watch.Interval
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", intervalStr, err)
	}
	if interval < 10*time.Second {
		return fmt.Errorf("interval must be at least 10s, got %s", interval)
	}

	budget := watchBudget
	if budget == 0 {
		budget = cfg.Watch.BudgetTokens
	}
	notify := watchNotify || cfg.Watch.Notify

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	go func() {
		<-sigCh
		cancel()
	}()

	w := watcher.New(cfg.ClaudeHome, interval, usage.DefaultLimits(), func(a watcher.Alert) {
		if !watchQuiet {
			printAlert(a)
		}
		if notify {
			if err := watcher.Notify(a); err != nil {
				log.Debug().Err(err).Msg("notification failed")
			}
		}
	})
	w.BudgetTokens = budget

	if !watchQuiet {
		fmt.Printf("oh-my-claude-token watching... (checking every %s)\n", interval)
	}

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// printAlert renders an alert to the terminal, styled by level.
func printAlert(a watcher.Alert) {
	stamp := output.StyleMuted.Render(a.Time.Format("15:04:05"))
	title := a.Title
	switch a.Level {
	case "critical":
		title = output.StyleError.Render(title)
	case "warning":
		title = output.StyleWarning.Render(title)
	default:
		title = output.StyleBold.Render(title)
	}
	fmt.Printf(" %s %s — %s\n", stamp, title, a.Message)
}
