// Package usage contains the token aggregation, limit policy, and
// formatting core shared by every presenter.
package usage

import "sort"

// DefaultDailyLimit is the ceiling applied to models absent from the table.
const DefaultDailyLimit = 500_000

// Urgency thresholds for today's total token count.
const (
	urgencyMediumAt = 100_000
	urgencyHighAt   = 300_000
)

// LimitTable maps a raw model identifier to its estimated daily token
// ceiling. The limits are estimates, not official quotas. The table is
// passed explicitly wherever it is needed so tests can substitute their own.
type LimitTable map[string]int

// DefaultLimits returns the built-in limit table.
func DefaultLimits() LimitTable {
	return LimitTable{
		"claude-opus-4-5-20251101":   500_000,
		"claude-opus-4-6":            500_000,
		"claude-sonnet-4-5-20250929": 1_000_000,
		"claude-haiku-4-5-20251001":  2_000_000,
	}
}

// For returns the daily ceiling for a model, falling back to
// DefaultDailyLimit for unknown identifiers. Lookups always use the raw
// identifier, never a shortened display name.
func (t LimitTable) For(model string) int {
	if limit, ok := t[model]; ok {
		return limit
	}
	return DefaultDailyLimit
}

// PrimaryModel returns the model with the highest token count in today's
// per-model mapping. Ties are broken by the lexicographically smaller
// identifier so the result is deterministic regardless of map iteration
// order. Returns "" for an empty mapping.
func PrimaryModel(tokensByModel map[string]int) string {
	models := make([]string, 0, len(tokensByModel))
	for m := range tokensByModel {
		models = append(models, m)
	}
	sort.Strings(models)

	primary := ""
	best := -1
	for _, m := range models {
		if tokensByModel[m] > best {
			primary = m
			best = tokensByModel[m]
		}
	}
	return primary
}

// Budget describes how today's usage stands against the primary model's
// daily ceiling.
type Budget struct {
	Model     string `json:"model"`
	Limit     int    `json:"limit"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// Assess computes the daily budget for today's per-model token mapping.
// Used is the sum over all models; the ceiling is the primary model's.
// Remaining is clamped at zero. Cache read/write tokens never appear in
// the daily mapping, so they do not count against the ceiling.
func (t LimitTable) Assess(tokensByModel map[string]int) Budget {
	total := 0
	for _, n := range tokensByModel {
		total += n
	}

	primary := PrimaryModel(tokensByModel)
	limit := t.For(primary)

	remaining := limit - total
	if remaining < 0 {
		remaining = 0
	}

	return Budget{
		Model:     primary,
		Limit:     limit,
		Used:      total,
		Remaining: remaining,
	}
}

// Urgency buckets today's total token count into display tiers.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
)

// UrgencyFor maps a today-total to its urgency tier.
func UrgencyFor(totalToday int) Urgency {
	switch {
	case totalToday < urgencyMediumAt:
		return UrgencyLow
	case totalToday < urgencyHighAt:
		return UrgencyMedium
	default:
		return UrgencyHigh
	}
}
