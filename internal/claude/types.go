// Package claude provides types and parsers for Claude Code's local data files.
package claude

// StatsCache represents the aggregate stats in ~/.claude/stats-cache.json.
// The file is written by Claude Code itself; this tool only ever reads it.
type StatsCache struct {
	Version          int                `json:"version"`
	LastComputedDate string             `json:"lastComputedDate"`
	DailyActivity    []DailyActivity    `json:"dailyActivity"`
	DailyModelTokens []DailyModelTokens `json:"dailyModelTokens"`
	ModelUsage       map[string]ModelUsage `json:"modelUsage"`
	TotalSessions    int                `json:"totalSessions"`
	TotalMessages    int                `json:"totalMessages"`
	FirstSessionDate string             `json:"firstSessionDate"`
	HourCounts       map[string]int     `json:"hourCounts"`
}

// DailyActivity represents a single day's activity metrics.
type DailyActivity struct {
	Date          string `json:"date"`
	MessageCount  int    `json:"messageCount"`
	SessionCount  int    `json:"sessionCount"`
	ToolCallCount int    `json:"toolCallCount"`
}

// DailyModelTokens represents token usage by model for a single day.
type DailyModelTokens struct {
	Date          string         `json:"date"`
	TokensByModel map[string]int `json:"tokensByModel"`
}

// ModelUsage represents aggregate usage stats for a single model.
type ModelUsage struct {
	InputTokens              int64   `json:"inputTokens"`
	OutputTokens             int64   `json:"outputTokens"`
	CacheReadInputTokens     int64   `json:"cacheReadInputTokens"`
	CacheCreationInputTokens int64   `json:"cacheCreationInputTokens"`
	WebSearchRequests        int     `json:"webSearchRequests"`
	CostUSD                  float64 `json:"costUSD"`
	ContextWindow            int     `json:"contextWindow"`
	MaxOutputTokens          int     `json:"maxOutputTokens"`
}

// SessionTokens holds running token sums for a single live session,
// accumulated from assistant records in a transcript JSONL file.
// Total counts input + output only; cache tokens are tracked separately.
type SessionTokens struct {
	Input       int64 `json:"input"`
	Output      int64 `json:"output"`
	CacheRead   int64 `json:"cache_read"`
	CacheCreate int64 `json:"cache_create"`
	Total       int64 `json:"total"`
}

// HookPayload is the JSON object Claude Code delivers on stdin when it
// invokes a status line or Stop hook. Every field is optional; a zero
// payload simply means "nothing to report".
type HookPayload struct {
	SessionID      string        `json:"session_id"`
	TranscriptPath string        `json:"transcript_path"`
	Model          HookModel     `json:"model"`
	ContextWindow  ContextWindow `json:"context_window"`
	Cost           HookCost      `json:"cost"`
	StopHookActive bool          `json:"stop_hook_active"`
	StopReason     string        `json:"stop_reason"`
	NumTurns       int           `json:"num_turns"`
}

// HookModel identifies the model driving the current session.
type HookModel struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ContextWindow holds context window sizing and usage for the live session.
// UsedPercentage is a pointer so that an absent field is distinguishable
// from an explicit zero.
type ContextWindow struct {
	ContextWindowSize int      `json:"context_window_size"`
	UsedPercentage    *float64 `json:"used_percentage"`
	TotalInputTokens  int64    `json:"total_input_tokens"`
	TotalOutputTokens int64    `json:"total_output_tokens"`
}

// HookCost holds accumulated cost data for the live session.
type HookCost struct {
	TotalCostUSD    float64 `json:"total_cost_usd"`
	TotalDurationMS int64   `json:"total_duration_ms"`
}
