package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

func stateWith(total, remaining int) *WatchState {
	return &WatchState{
		Timestamp:   time.Now(),
		Date:        "2026-08-30",
		TodayTokens: map[string]int{"claude-opus-4-6": total},
		TotalToday:  total,
		Budget: usage.Budget{
			Model:     "claude-opus-4-6",
			Limit:     500_000,
			Used:      total,
			Remaining: remaining,
		},
		Urgency: usage.UrgencyFor(total),
	}
}

func TestCompare_UrgencyEscalation(t *testing.T) {
	prev := stateWith(90_000, 410_000)
	curr := stateWith(150_000, 350_000)

	alerts := Compare(prev, curr)
	if len(alerts) == 0 {
		t.Fatal("expected at least one alert")
	}
	found := false
	for _, a := range alerts {
		if a.Level == "warning" && a.Title == "Token usage medium" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected medium-urgency warning, got %+v", alerts)
	}
}

func TestCompare_BudgetExhausted(t *testing.T) {
	prev := stateWith(400_000, 100_000)
	curr := stateWith(520_000, 0)

	alerts := Compare(prev, curr)
	found := false
	for _, a := range alerts {
		if a.Level == "critical" && a.Title == "Daily budget exhausted" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected critical exhaustion alert, got %+v", alerts)
	}
}

func TestCompare_NoChangeNoAlerts(t *testing.T) {
	prev := stateWith(50_000, 450_000)
	curr := stateWith(50_000, 450_000)

	if alerts := Compare(prev, curr); len(alerts) != 0 {
		t.Errorf("expected no alerts, got %+v", alerts)
	}
}

func TestCompare_DayRollover(t *testing.T) {
	prev := stateWith(400_000, 100_000)
	curr := stateWith(0, 500_000)
	curr.Date = "2026-08-31"

	alerts := Compare(prev, curr)
	found := false
	for _, a := range alerts {
		if a.Level == "info" && a.Title == "New day" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected new-day info alert, got %+v", alerts)
	}
}

func TestCompare_FastBurn(t *testing.T) {
	prev := stateWith(10_000, 490_000)
	curr := stateWith(70_000, 430_000)

	alerts := Compare(prev, curr)
	found := false
	for _, a := range alerts {
		if a.Level == "info" && a.Title == "Fast burn" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected fast-burn info alert, got %+v", alerts)
	}
}

func writeStats(t *testing.T, dir string, todayTokens int) {
	t.Helper()
	today := time.Now().Format("2006-01-02")
	data := fmt.Sprintf(`{
		"dailyModelTokens": [{"date":%q,"tokensByModel":{"claude-opus-4-6":%d}}],
		"dailyActivity": [{"date":%q,"messageCount":10,"toolCallCount":20}]
	}`, today, todayTokens, today)
	if err := os.WriteFile(filepath.Join(dir, claude.StatsFileName), []byte(data), 0644); err != nil {
		t.Fatalf("write stats: %v", err)
	}
}

func TestSnapshot_ReadsStatsAndLiveTranscripts(t *testing.T) {
	home := t.TempDir()
	writeStats(t, home, 120_000)

	projDir := filepath.Join(home, "projects", "-proj")
	if err := os.MkdirAll(projDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	transcript := `{"type":"assistant","message":{"usage":{"input_tokens":100,"output_tokens":50}}}` + "\n"
	if err := os.WriteFile(filepath.Join(projDir, "sess.jsonl"), []byte(transcript), 0644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	w := New(home, time.Minute, usage.DefaultLimits(), nil)
	state, err := w.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if state.TotalToday != 120_000 {
		t.Errorf("TotalToday = %d, want 120000", state.TotalToday)
	}
	if state.Budget.Remaining != 380_000 {
		t.Errorf("Remaining = %d, want 380000", state.Budget.Remaining)
	}
	if state.Urgency != usage.UrgencyMedium {
		t.Errorf("Urgency = %v, want medium", state.Urgency)
	}
	if state.LiveSessions != 1 {
		t.Errorf("LiveSessions = %d, want 1", state.LiveSessions)
	}
	if state.LiveTokens.Total != 150 {
		t.Errorf("LiveTokens.Total = %d, want 150", state.LiveTokens.Total)
	}
}

func TestSnapshot_MissingHomeIsNotFatal(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"), time.Minute, usage.DefaultLimits(), nil)
	state, err := w.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if state.TotalToday != 0 || state.LiveSessions != 0 {
		t.Errorf("expected empty state, got %+v", state)
	}
}

func TestCheck_SuppressesRepeatedAlerts(t *testing.T) {
	home := t.TempDir()
	writeStats(t, home, 600_000)

	w := New(home, time.Minute, usage.DefaultLimits(), nil)
	w.BudgetTokens = 500_000

	first := w.Check()
	if len(first) == 0 {
		t.Fatal("expected a budget alert on first check")
	}
	second := w.Check()
	if len(second) != 0 {
		t.Errorf("expected repeated alert to be suppressed, got %+v", second)
	}
}
