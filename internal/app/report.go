package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/output"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the full token usage report",
	Long: `Read the Claude Code stats cache and print today's per-model usage
against estimated daily limits, all-time totals, session statistics, and
the last seven days of activity.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the aggregated summary as JSON")
	rootCmd.AddCommand(reportCmd)
}

// reportOutput is the JSON-serializable output for the report command.
type reportOutput struct {
	Summary usage.Summary `json:"summary"`
	Budget  usage.Budget  `json:"budget"`
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPrefs(cfg)

	stats, err := claude.ParseStatsCache(cfg.ClaudeHome)
	if err != nil {
		// Malformed cache degrades to "no data"; the report still renders.
		log.Debug().Err(err).Str("path", claude.StatsPath(cfg.ClaudeHome)).
			Msg("stats cache unreadable")
		stats = nil
	}

	summary := usage.Aggregate(stats, time.Now())
	limits := usage.DefaultLimits()

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reportOutput{
			Summary: summary,
			Budget:  limits.Assess(summary.TodayTokens),
		})
	}

	renderReport(cmd.OutOrStdout(), summary, limits, cfg.Output.Width, claude.StatsPath(cfg.ClaudeHome))
	return nil
}

// renderReport prints the multi-section report. It always produces output,
// even when the snapshot is unavailable.
func renderReport(w io.Writer, s usage.Summary, limits usage.LimitTable, barWidth int, statsPath string) {
	fmt.Fprintln(w, output.Section(fmt.Sprintf("Claude Code Token Usage — %s", s.Date)))
	if !s.Available {
		fmt.Fprintf(w, " %s\n", output.StyleMuted.Render(fmt.Sprintf("stats file not found: %s", statsPath)))
	}

	renderTodaySection(w, s, limits, barWidth)
	renderAllTimeSection(w, s)
	renderSessionSection(w, s)
	renderRecentSection(w, s)
	fmt.Fprintln(w)
}

func renderTodaySection(w io.Writer, s usage.Summary, limits usage.LimitTable, barWidth int) {
	fmt.Fprintln(w, output.Section("Today's Usage"))

	if len(s.TodayTokens) == 0 {
		fmt.Fprint(w, output.NoData("No usage recorded today"))
		return
	}

	for _, model := range sortedKeys(s.TodayTokens) {
		tokens := s.TodayTokens[model]
		limit := limits.For(model)
		remaining := limit - tokens
		if remaining < 0 {
			remaining = 0
		}

		fmt.Fprintf(w, " %s\n", output.StyleBold.Render(usage.ShortModelName(model)+":"))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Used"),
			output.StyleValue.Render(fmt.Sprintf("%s / %s", usage.FormatTokens(int64(tokens)), usage.FormatTokens(int64(limit)))))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Remaining"),
			output.StyleValue.Render("~"+usage.FormatTokens(int64(remaining))))
		fmt.Fprintf(w, "   %s\n", output.BudgetBar(tokens, limit, barWidth))
	}
}

func renderAllTimeSection(w io.Writer, s usage.Summary) {
	fmt.Fprintln(w, output.Section("Total Usage (All Time)"))

	if len(s.ModelUsage) == 0 {
		fmt.Fprint(w, output.NoData("No usage recorded"))
		return
	}

	for _, model := range sortedUsageKeys(s.ModelUsage) {
		u := s.ModelUsage[model]
		fmt.Fprintf(w, " %s\n", output.StyleBold.Render(usage.ShortModelName(model)+":"))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Input"),
			output.StyleValue.Render(usage.FormatTokens(u.InputTokens)))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Output"),
			output.StyleValue.Render(usage.FormatTokens(u.OutputTokens)))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Cache Read"),
			output.StyleValue.Render(usage.FormatTokens(u.CacheReadInputTokens)))
		fmt.Fprintf(w, "   %s %s\n",
			output.StyleLabel.Render("Cache Write"),
			output.StyleValue.Render(usage.FormatTokens(u.CacheCreationInputTokens)))
	}
}

func renderSessionSection(w io.Writer, s usage.Summary) {
	fmt.Fprintln(w, output.Section("Session Statistics"))

	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Total sessions"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.TotalSessions)))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render("Total messages"),
		output.StyleValue.Render(fmt.Sprintf("%d", s.TotalMessages)))
	if s.FirstSessionDate != "" {
		fmt.Fprintf(w, " %s %s\n",
			output.StyleLabel.Render("First session"),
			output.StyleValue.Render(s.FirstSessionDate))
	}
}

func renderRecentSection(w io.Writer, s usage.Summary) {
	fmt.Fprintln(w, output.Section("Recent Activity (Last 7 Days)"))

	if len(s.RecentDays) == 0 {
		fmt.Fprint(w, output.NoData("No recent activity"))
		return
	}

	for _, d := range s.RecentDays {
		fmt.Fprintf(w, " %s: %d msgs, %d tools, %s tokens\n",
			output.StyleBold.Render(d.Date),
			d.MessageCount, d.ToolCallCount,
			usage.FormatTokens(int64(d.TotalTokens)))
	}
}

// sortedKeys returns the keys of a token mapping in lexicographic order so
// report output is stable across runs.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedUsageKeys(m map[string]claude.ModelUsage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
