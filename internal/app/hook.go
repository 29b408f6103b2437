package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

var flagHookANSI bool

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Print a compact usage line for a Claude Code Stop hook",
	Long: `Read the hook payload from stdin, sum the live session's tokens from
its transcript, combine with today's accumulated usage, and print a single
bracketed line. By default the line is wrapped as {"systemMessage": "..."}
for the hook output channel; --ansi prints colored plain text instead,
with the color keyed to how much of the daily budget is burned.

When the payload signals stop_hook_active the command prints nothing, so a
hook that re-fires on its own stop stays silent.`,
	RunE: runHook,
}

func init() {
	hookCmd.Flags().BoolVar(&flagHookANSI, "ansi", false, "Print ANSI-colored plain text instead of a systemMessage object")
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	payload := claude.ReadHookPayload(cmd.InOrStdin())
	if payload.StopHookActive {
		// Idempotence guard: the stop hook fired for our own output.
		return nil
	}

	session := claude.ParseSessionTokens(payload.TranscriptPath)

	stats, err := claude.ParseStatsCache(cfg.ClaudeHome)
	if err != nil {
		log.Debug().Err(err).Msg("stats cache unreadable")
		stats = nil
	}
	summary := usage.Aggregate(stats, time.Now())

	return writeHookMessage(cmd.OutOrStdout(), payload, session, summary, usage.DefaultLimits(), flagHookANSI)
}

// renderHookMessage builds the bracketed hook line from the live session
// sums, today's totals, and the turn count.
func renderHookMessage(p claude.HookPayload, session claude.SessionTokens, s usage.Summary, limits usage.LimitTable) string {
	var parts []string

	if session.Total > 0 {
		parts = append(parts,
			"Session: "+usage.FormatTokensCompact(session.Total),
			"In: "+usage.FormatTokensCompact(session.Input),
			"Out: "+usage.FormatTokensCompact(session.Output))
	}

	if total := s.TotalToday(); s.Available && total > 0 {
		parts = append(parts, "Today: "+usage.FormatTokensCompact(int64(total)))

		budget := limits.Assess(s.TodayTokens)
		parts = append(parts, "Remain: ~"+usage.FormatTokensCompact(int64(budget.Remaining)))
	}

	if p.NumTurns > 0 {
		parts = append(parts, fmt.Sprintf("Turns: %d", p.NumTurns))
	}

	if len(parts) == 0 {
		return "[No usage data]"
	}
	return "[" + strings.Join(parts, " | ") + "]"
}

// writeHookMessage renders the hook line in the requested variant: a
// single-field JSON object, or ANSI-colored plain text banded by urgency.
func writeHookMessage(w io.Writer, p claude.HookPayload, session claude.SessionTokens, s usage.Summary, limits usage.LimitTable, ansi bool) error {
	message := renderHookMessage(p, session, s, limits)

	if !ansi {
		out, err := json.Marshal(map[string]string{"systemMessage": message})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	_, err := fmt.Fprintln(w, urgencyColor(usage.UrgencyFor(s.TotalToday())).Sprint(message))
	return err
}

// urgencyColor maps an urgency tier to its ANSI color. The hook channel is
// a pipe, not a tty, so color is forced on.
func urgencyColor(u usage.Urgency) *color.Color {
	var c *color.Color
	switch u {
	case usage.UrgencyLow:
		c = color.New(color.FgGreen)
	case usage.UrgencyMedium:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	c.EnableColor()
	return c
}
