package usage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTokens_Thresholds(t *testing.T) {
	assert.Equal(t, "0", FormatTokens(0))
	assert.Equal(t, "999", FormatTokens(999))
	assert.Equal(t, "1.0K", FormatTokens(1000))
	assert.Equal(t, "500.0K", FormatTokens(500_000))
	assert.Equal(t, "1000.0K", FormatTokens(999_999))
	assert.Equal(t, "1.00M", FormatTokens(1_000_000))
	assert.Equal(t, "2.50M", FormatTokens(2_500_000))
}

func TestFormatTokensCompact_Thresholds(t *testing.T) {
	assert.Equal(t, "999", FormatTokensCompact(999))
	assert.Equal(t, "1K", FormatTokensCompact(1000))
	assert.Equal(t, "2K", FormatTokensCompact(1500))
	assert.Equal(t, "1.0M", FormatTokensCompact(1_000_000))
	assert.Equal(t, "1.5M", FormatTokensCompact(1_500_000))
}

func TestBar_HalfFull(t *testing.T) {
	bar := Bar(500, 1000, 30)
	assert.Equal(t, 15, strings.Count(bar, "█"))
	assert.Equal(t, 15, strings.Count(bar, "░"))
	assert.Contains(t, bar, "50.0%")
}

func TestBar_ZeroLimit(t *testing.T) {
	bar := Bar(12345, 0, 30)
	assert.Equal(t, 0, strings.Count(bar, "█"))
	assert.Equal(t, 30, strings.Count(bar, "░"))
	assert.Contains(t, bar, "0.0%")
}

func TestBar_ClampsAboveLimit(t *testing.T) {
	bar := Bar(2000, 1000, 30)
	assert.Equal(t, 30, strings.Count(bar, "█"))
	assert.Contains(t, bar, "100.0%")
}

func TestBar_DefaultWidth(t *testing.T) {
	bar := Bar(0, 100, 0)
	assert.Equal(t, 30, strings.Count(bar, "░"))
}

func TestShortModelName(t *testing.T) {
	assert.Equal(t, "sonnet-4-5", ShortModelName("claude-sonnet-4-5-20250929"))
	assert.Equal(t, "opus-4-6", ShortModelName("claude-opus-4-6"))
	assert.Equal(t, "haiku-4-5", ShortModelName("claude-haiku-4-5-20251001"))
	assert.Equal(t, "gpt-nano", ShortModelName("gpt-nano"))
}
