package output

import (
	"fmt"
	"strings"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

// BudgetBar renders a styled progress bar for used tokens against a daily
// limit, colored by urgency tier.
// Example: "[███████████████░░░░░░░░░░░░░░░] 50.0%"
func BudgetBar(used, limit int, width int) string {
	bar := usage.Bar(used, limit, width)

	switch usage.UrgencyFor(used) {
	case usage.UrgencyLow:
		return StyleSuccess.Render(bar)
	case usage.UrgencyMedium:
		return StyleWarning.Render(bar)
	default:
		return StyleError.Render(bar)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 50))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// NoData renders a muted "nothing to show" line for an empty section.
func NoData(msg string) string {
	return fmt.Sprintf(" %s\n", StyleMuted.Render(msg))
}
