package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

// statusPlaceholder is emitted when no fact is available at all.
const statusPlaceholder = "Claude Code"

var statuslineCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Print a one-line status string for the Claude Code status bar",
	Long: `Read the status payload from stdin and the stats cache from disk, and
print a single pipe-delimited line: model, context usage, session tokens,
today's total and remaining budget, and session cost. Intended to be wired
as a Claude Code statusLine command.`,
	RunE: runStatusline,
}

func init() {
	rootCmd.AddCommand(statuslineCmd)
}

func runStatusline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	payload := claude.ReadHookPayload(cmd.InOrStdin())

	stats, err := claude.ParseStatsCache(cfg.ClaudeHome)
	if err != nil {
		log.Debug().Err(err).Msg("stats cache unreadable")
		stats = nil
	}
	summary := usage.Aggregate(stats, time.Now())

	fmt.Fprintln(cmd.OutOrStdout(), renderStatusLine(payload, summary, usage.DefaultLimits()))
	return nil
}

// renderStatusLine joins the present facts with " | ". Absent or zero
// facts are omitted; when nothing is present the fixed placeholder is
// returned, never an empty string.
func renderStatusLine(p claude.HookPayload, s usage.Summary, limits usage.LimitTable) string {
	var parts []string

	if p.Model.DisplayName != "" {
		parts = append(parts, p.Model.DisplayName)
	}

	if pct := p.ContextWindow.UsedPercentage; pct != nil && *pct > 0 {
		parts = append(parts, fmt.Sprintf("Ctx: %.0f%%", *pct))
	}

	if sessionTotal := p.ContextWindow.TotalInputTokens + p.ContextWindow.TotalOutputTokens; sessionTotal > 0 {
		parts = append(parts, "Session: "+usage.FormatTokensCompact(sessionTotal))
	}

	if total := s.TotalToday(); total > 0 {
		parts = append(parts, "Today: "+usage.FormatTokensCompact(int64(total)))

		budget := limits.Assess(s.TodayTokens)
		parts = append(parts, "Remain: ~"+usage.FormatTokensCompact(int64(budget.Remaining)))
	}

	if p.Cost.TotalCostUSD > 0 {
		parts = append(parts, fmt.Sprintf("$%.2f", p.Cost.TotalCostUSD))
	}

	if len(parts) == 0 {
		return statusPlaceholder
	}
	return strings.Join(parts, " | ")
}
