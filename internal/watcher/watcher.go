// Package watcher provides background monitoring of Claude Code token
// usage, alerting when the daily budget burns down or urgency changes.
package watcher

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

// WatchState captures a point-in-time snapshot of token usage.
type WatchState struct {
	Timestamp    time.Time
	Date         string
	TodayTokens  map[string]int
	TotalToday   int
	Budget       usage.Budget
	Urgency      usage.Urgency
	LiveSessions int
	LiveTokens   claude.SessionTokens
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Watcher re-snapshots token usage at a regular interval and emits alerts
// when notable changes are detected. It only ever reads Claude Code's
// files; nothing is persisted between runs.
type Watcher struct {
	claudeHome    string
	interval      time.Duration
	limits        usage.LimitTable
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts

	// BudgetTokens is an optional user alert threshold for today's total;
	// 0 means no threshold alert.
	BudgetTokens int
}

// New creates a Watcher over the given Claude data directory.
func New(claudeHome string, interval time.Duration, limits usage.LimitTable, alertFn func(Alert)) *Watcher {
	return &Watcher{
		claudeHome:    claudeHome,
		interval:      interval,
		limits:        limits,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alerts := w.Check()
			for _, a := range alerts {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares it
// with the previous state, updates the previous state, and returns any
// alerts. Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check() []Alert {
	curr, err := w.Snapshot()
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not read usage data: %v", err),
			Time:    time.Now(),
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}

	// Threshold alert: fires when today's total exceeds the user budget.
	if w.BudgetTokens > 0 && curr.TotalToday > w.BudgetTokens {
		raw = append(raw, Alert{
			Level: "warning",
			Title: "Token budget exceeded",
			Message: fmt.Sprintf("%s tokens today (budget: %s)",
				usage.FormatTokensCompact(int64(curr.TotalToday)),
				usage.FormatTokensCompact(int64(w.BudgetTokens))),
			Time: time.Now(),
		})
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot captures the current usage state. The stats cache read and the
// live transcript scan are independent, so they run concurrently.
func (w *Watcher) Snapshot() (*WatchState, error) {
	now := time.Now()

	var stats *claude.StatsCache
	var live claude.SessionTokens
	var liveCount int

	g := new(errgroup.Group)
	g.Go(func() error {
		s, err := claude.ParseStatsCache(w.claudeHome)
		if err != nil {
			return fmt.Errorf("parsing stats cache: %w", err)
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		paths := claude.LiveTranscripts(w.claudeHome, dayStart)
		for _, p := range paths {
			t := claude.ParseSessionTokens(p)
			live.Input += t.Input
			live.Output += t.Output
			live.CacheRead += t.CacheRead
			live.CacheCreate += t.CacheCreate
			live.Total += t.Total
		}
		liveCount = len(paths)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := usage.Aggregate(stats, now)
	return &WatchState{
		Timestamp:    now,
		Date:         summary.Date,
		TodayTokens:  summary.TodayTokens,
		TotalToday:   summary.TotalToday(),
		Budget:       w.limits.Assess(summary.TodayTokens),
		Urgency:      usage.UrgencyFor(summary.TotalToday()),
		LiveSessions: liveCount,
		LiveTokens:   live,
	}, nil
}
