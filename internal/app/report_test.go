package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/output"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

func init() {
	// Keep rendered output free of escape codes for assertions.
	output.SetNoColor(true)
}

func reportSummary() usage.Summary {
	return usage.Summary{
		Available: true,
		Date:      "2026-08-30",
		TodayTokens: map[string]int{
			"claude-opus-4-6": 150_000,
		},
		ModelUsage: map[string]claude.ModelUsage{
			"claude-opus-4-6": {
				InputTokens:              900_000,
				OutputTokens:             300_000,
				CacheReadInputTokens:     2_000_000,
				CacheCreationInputTokens: 50_000,
			},
		},
		TotalSessions:    42,
		TotalMessages:    500,
		FirstSessionDate: "2025-12-01",
		RecentDays: []usage.DaySummary{
			{Date: "2026-08-30", MessageCount: 30, ToolCallCount: 80, TotalTokens: 150_000},
			{Date: "2026-08-28", MessageCount: 50, ToolCallCount: 120, TotalTokens: 40_000},
		},
	}
}

func TestRenderReport_AllSections(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, reportSummary(), usage.DefaultLimits(), 30, "/home/u/.claude/stats-cache.json")
	out := buf.String()

	assert.Contains(t, out, "Claude Code Token Usage — 2026-08-30")
	assert.Contains(t, out, "Today's Usage")
	assert.Contains(t, out, "opus-4-6:")
	assert.Contains(t, out, "150.0K / 500.0K")
	assert.Contains(t, out, "~350.0K")
	assert.Contains(t, out, "30.0%")
	assert.Contains(t, out, "Total Usage (All Time)")
	assert.Contains(t, out, "900.0K")
	assert.Contains(t, out, "2.00M")
	assert.Contains(t, out, "Session Statistics")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "2025-12-01")
	assert.Contains(t, out, "Recent Activity (Last 7 Days)")
	assert.Contains(t, out, "2026-08-28: 50 msgs, 120 tools, 40.0K tokens")
	assert.NotContains(t, out, "stats file not found")
}

func TestRenderReport_EmptyToday(t *testing.T) {
	s := reportSummary()
	s.TodayTokens = map[string]int{}
	s.RecentDays = nil

	var buf bytes.Buffer
	renderReport(&buf, s, usage.DefaultLimits(), 30, "")
	out := buf.String()

	assert.Contains(t, out, "No usage recorded today")
	assert.Contains(t, out, "No recent activity")
}

func TestRenderReport_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, usage.Summary{}, usage.DefaultLimits(), 30, "/home/u/.claude/stats-cache.json")
	out := buf.String()

	// The notice appears, and every section still renders.
	assert.Contains(t, out, "stats file not found: /home/u/.claude/stats-cache.json")
	assert.Contains(t, out, "Today's Usage")
	assert.Contains(t, out, "No usage recorded today")
	assert.Contains(t, out, "Session Statistics")
	assert.Contains(t, out, "No recent activity")
}

func TestRenderReport_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	renderReport(&a, reportSummary(), usage.DefaultLimits(), 30, "")
	renderReport(&b, reportSummary(), usage.DefaultLimits(), 30, "")
	assert.Equal(t, a.String(), b.String())
}
