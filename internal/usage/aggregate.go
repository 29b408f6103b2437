package usage

import (
	"sort"
	"time"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
)

// dateLayout is the calendar-day format used throughout the stats cache.
const dateLayout = "2006-01-02"

// Summary is the normalized view of the stats snapshot that every
// presenter renders from. It is a pure function of the snapshot and the
// reference date; rendering it twice yields identical output.
type Summary struct {
	// Available is false when no stats snapshot could be read. The rest
	// of the fields are then empty, and presenters fall back to their
	// "no data" forms.
	Available bool `json:"available"`

	Date             string                        `json:"date"`
	TodayTokens      map[string]int                `json:"today_tokens"`
	ModelUsage       map[string]claude.ModelUsage  `json:"model_usage"`
	TotalSessions    int                           `json:"total_sessions"`
	TotalMessages    int                           `json:"total_messages"`
	FirstSessionDate string                        `json:"first_session_date,omitempty"`
	RecentDays       []DaySummary                  `json:"recent_days"`
}

// DaySummary joins one day's activity counts with that day's token total.
type DaySummary struct {
	Date          string `json:"date"`
	MessageCount  int    `json:"message_count"`
	ToolCallCount int    `json:"tool_call_count"`
	TotalTokens   int    `json:"total_tokens"`
}

// TotalToday returns the sum of today's tokens across all models.
func (s Summary) TotalToday() int {
	total := 0
	for _, n := range s.TodayTokens {
		total += n
	}
	return total
}

// Aggregate builds a Summary from a parsed stats cache. ref supplies
// "today" explicitly (local wall-clock date at the call site) so the
// computation is deterministic under test. A nil cache yields a Summary
// with Available=false.
func Aggregate(stats *claude.StatsCache, ref time.Time) Summary {
	if stats == nil {
		return Summary{}
	}

	today := ref.Format(dateLayout)

	return Summary{
		Available:        true,
		Date:             today,
		TodayTokens:      tokensForDate(stats.DailyModelTokens, today),
		ModelUsage:       stats.ModelUsage,
		TotalSessions:    stats.TotalSessions,
		TotalMessages:    stats.TotalMessages,
		FirstSessionDate: firstSessionDay(stats.FirstSessionDate),
		RecentDays:       recentDays(stats, ref),
	}
}

// tokensForDate returns the per-model token mapping for the first daily
// entry matching date. First match wins; duplicate dates are never merged.
func tokensForDate(daily []claude.DailyModelTokens, date string) map[string]int {
	for _, entry := range daily {
		if entry.Date == date {
			if entry.TokensByModel == nil {
				return map[string]int{}
			}
			return entry.TokensByModel
		}
	}
	return map[string]int{}
}

// recentDays filters activity to the last 7 days (inclusive), newest
// first, joining each day with its token total by date-equality lookup.
func recentDays(stats *claude.StatsCache, ref time.Time) []DaySummary {
	weekAgo := ref.AddDate(0, 0, -7).Format(dateLayout)

	var days []DaySummary
	for _, a := range stats.DailyActivity {
		if a.Date < weekAgo {
			continue
		}

		total := 0
		for _, n := range tokensForDate(stats.DailyModelTokens, a.Date) {
			total += n
		}

		days = append(days, DaySummary{
			Date:          a.Date,
			MessageCount:  a.MessageCount,
			ToolCallCount: a.ToolCallCount,
			TotalTokens:   total,
		})
	}

	// Newest first for display. The cache keeps at most one entry per
	// day, so sorting by date is a total order.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}

// firstSessionDay reduces an ISO timestamp to its calendar day. The cache
// stores firstSessionDate as either a bare date or a full RFC3339 stamp.
func firstSessionDay(s string) string {
	if len(s) >= len(dateLayout) {
		return s[:len(dateLayout)]
	}
	return s
}
