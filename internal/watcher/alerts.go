package watcher

import (
	"fmt"
	"time"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

// infoJumpTokens is the minimum between-check increase in today's total
// that triggers an informational burn-rate alert.
const infoJumpTokens = 50_000

// Compare detects notable changes between two watch states and returns
// alerts, most severe first.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical detects budget exhaustion.
func compareCritical(prev, curr *WatchState) []Alert {
	var alerts []Alert

	if prev.Budget.Remaining > 0 && curr.Budget.Remaining == 0 && curr.TotalToday > 0 {
		alerts = append(alerts, Alert{
			Level: "critical",
			Title: "Daily budget exhausted",
			Message: fmt.Sprintf("%s used today against %s's ~%s ceiling",
				usage.FormatTokensCompact(int64(curr.TotalToday)),
				usage.ShortModelName(curr.Budget.Model),
				usage.FormatTokensCompact(int64(curr.Budget.Limit))),
			Time: time.Now(),
		})
	}

	return alerts
}

// compareWarning detects urgency tier escalations.
func compareWarning(prev, curr *WatchState) []Alert {
	var alerts []Alert

	if curr.Urgency > prev.Urgency {
		tier := "medium"
		if curr.Urgency == usage.UrgencyHigh {
			tier = "high"
		}
		alerts = append(alerts, Alert{
			Level: "warning",
			Title: fmt.Sprintf("Token usage %s", tier),
			Message: fmt.Sprintf("%s tokens today, ~%s remaining",
				usage.FormatTokensCompact(int64(curr.TotalToday)),
				usage.FormatTokensCompact(int64(curr.Budget.Remaining))),
			Time: time.Now(),
		})
	}

	return alerts
}

// compareInfo detects day rollover and fast burn between checks.
func compareInfo(prev, curr *WatchState) []Alert {
	var alerts []Alert

	if prev.Date != "" && curr.Date != prev.Date {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "New day",
			Message: fmt.Sprintf("Daily counters reset; ~%s available", usage.FormatTokensCompact(int64(curr.Budget.Remaining))),
			Time:    time.Now(),
		})
		return alerts
	}

	if jump := curr.TotalToday - prev.TotalToday; jump >= infoJumpTokens {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Fast burn",
			Message: fmt.Sprintf("+%s tokens since last check", usage.FormatTokensCompact(int64(jump))),
			Time:    time.Now(),
		})
	}

	return alerts
}
