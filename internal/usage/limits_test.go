package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitTable_For(t *testing.T) {
	limits := DefaultLimits()
	assert.Equal(t, 1_000_000, limits.For("claude-sonnet-4-5-20250929"))
	assert.Equal(t, 500_000, limits.For("claude-opus-4-6"))
	assert.Equal(t, DefaultDailyLimit, limits.For("some-unknown-model"))
}

func TestPrimaryModel_HighestWins(t *testing.T) {
	got := PrimaryModel(map[string]int{
		"claude-opus-4-6":            600_000,
		"claude-sonnet-4-5-20250929": 100_000,
	})
	assert.Equal(t, "claude-opus-4-6", got)
}

func TestPrimaryModel_TieBreaksLexicographically(t *testing.T) {
	tokens := map[string]int{
		"model-b": 100,
		"model-a": 100,
		"model-c": 100,
	}
	// Repeated calls must be deterministic regardless of map iteration.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "model-a", PrimaryModel(tokens))
	}
}

func TestPrimaryModel_Empty(t *testing.T) {
	assert.Equal(t, "", PrimaryModel(nil))
	assert.Equal(t, "", PrimaryModel(map[string]int{}))
}

func TestAssess_ClampsRemainingAtZero(t *testing.T) {
	limits := LimitTable{"model-A": 500_000}
	b := limits.Assess(map[string]int{
		"model-A": 600_000,
		"model-B": 100_000,
	})

	assert.Equal(t, "model-A", b.Model)
	assert.Equal(t, 500_000, b.Limit)
	assert.Equal(t, 700_000, b.Used)
	assert.Equal(t, 0, b.Remaining)
}

func TestAssess_RemainingBudget(t *testing.T) {
	b := DefaultLimits().Assess(map[string]int{
		"claude-sonnet-4-5-20250929": 250_000,
	})

	assert.Equal(t, "claude-sonnet-4-5-20250929", b.Model)
	assert.Equal(t, 1_000_000, b.Limit)
	assert.Equal(t, 250_000, b.Used)
	assert.Equal(t, 750_000, b.Remaining)
}

func TestAssess_EmptyMapping(t *testing.T) {
	b := DefaultLimits().Assess(nil)
	assert.Equal(t, "", b.Model)
	assert.Equal(t, DefaultDailyLimit, b.Limit)
	assert.Equal(t, 0, b.Used)
	assert.Equal(t, DefaultDailyLimit, b.Remaining)
}

func TestUrgencyFor_Tiers(t *testing.T) {
	assert.Equal(t, UrgencyLow, UrgencyFor(0))
	assert.Equal(t, UrgencyLow, UrgencyFor(99_999))
	assert.Equal(t, UrgencyMedium, UrgencyFor(100_000))
	assert.Equal(t, UrgencyMedium, UrgencyFor(299_999))
	assert.Equal(t, UrgencyHigh, UrgencyFor(300_000))
	assert.Equal(t, UrgencyHigh, UrgencyFor(5_000_000))
}
