package usage

import (
	"fmt"
	"regexp"
	"strings"
)

// FormatTokens renders a token count with a K/M suffix at report
// precision: 1.00M / 1.0K / 999.
func FormatTokens(tokens int64) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(tokens)/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%.1fK", float64(tokens)/1_000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}

// FormatTokensCompact renders a token count at status-line precision:
// 1.0M / 1K / 999.
func FormatTokensCompact(tokens int64) string {
	switch {
	case tokens >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%.0fK", float64(tokens)/1_000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}

// Bar renders a progress bar for used tokens against a limit, e.g.
// "[███████████████░░░░░░░░░░░░░░░] 50.0%". A zero limit renders as 0%.
func Bar(used, limit int, width int) string {
	if width <= 0 {
		width = 30
	}

	var pct float64
	if limit > 0 {
		pct = float64(used) / float64(limit)
		if pct > 1.0 {
			pct = 1.0
		}
	}

	filled := int(float64(width) * pct)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %.1f%%", bar, pct*100)
}

// modelDateSuffix matches trailing release-date suffixes like "-20250929".
var modelDateSuffix = regexp.MustCompile(`-20\d{6}$`)

// ShortModelName shortens a raw model identifier for display by stripping
// the vendor prefix and any trailing release date. Display only: limit
// lookups always use the raw identifier.
func ShortModelName(model string) string {
	short := strings.TrimPrefix(model, "claude-")
	return modelDateSuffix.ReplaceAllString(short, "")
}
