package mcp

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/claude"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

// NewServer constructs a Server reading Claude data from claudeHome and
// assessing budgets against limits.
func NewServer(claudeHome string, limits usage.LimitTable) *Server {
	s := &Server{
		claudeHome: claudeHome,
		limits:     limits,
		now:        time.Now,
	}
	addTools(s)
	return s
}

// UsageTodayResult holds today's per-model tokens and the remaining budget.
type UsageTodayResult struct {
	Date           string         `json:"date"`
	TokensByModel  map[string]int `json:"tokens_by_model"`
	TotalTokens    int            `json:"total_tokens"`
	PrimaryModel   string         `json:"primary_model,omitempty"`
	DailyLimit     int            `json:"daily_limit"`
	RemainingEst   int            `json:"remaining_estimate"`
	LimitExhausted bool           `json:"limit_exhausted"`
}

var (
	noArgsSchema     = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	transcriptSchema = json.RawMessage(`{"type":"object","properties":{"transcript_path":{"type":"string","description":"Path to a session transcript JSONL file"}},"required":["transcript_path"],"additionalProperties":false}`)
)

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "usage_report",
		Description: "Full aggregated token usage summary: today's per-model tokens, all-time totals, session statistics, and the last 7 days of activity.",
		InputSchema: noArgsSchema,
		Handler:     s.handleUsageReport,
	})
	s.registerTool(toolDef{
		Name:        "usage_today",
		Description: "Today's token usage by model with the estimated remaining daily budget.",
		InputSchema: noArgsSchema,
		Handler:     s.handleUsageToday,
	})
	s.registerTool(toolDef{
		Name:        "session_tokens",
		Description: "Token sums (input, output, cache) for a single session transcript.",
		InputSchema: transcriptSchema,
		Handler:     s.handleSessionTokens,
	})
}

// loadSummary aggregates the stats cache; a missing or unreadable cache
// yields an unavailable summary, not an error.
func (s *Server) loadSummary() usage.Summary {
	stats, err := claude.ParseStatsCache(s.claudeHome)
	if err != nil {
		stats = nil
	}
	return usage.Aggregate(stats, s.now())
}

// handleUsageReport returns the full aggregated summary plus the budget.
func (s *Server) handleUsageReport(args json.RawMessage) (any, error) {
	summary := s.loadSummary()
	return struct {
		Summary usage.Summary `json:"summary"`
		Budget  usage.Budget  `json:"budget"`
	}{
		Summary: summary,
		Budget:  s.limits.Assess(summary.TodayTokens),
	}, nil
}

// handleUsageToday returns today's per-model tokens and remaining budget.
func (s *Server) handleUsageToday(args json.RawMessage) (any, error) {
	summary := s.loadSummary()
	b := s.limits.Assess(summary.TodayTokens)

	return UsageTodayResult{
		Date:           s.now().Format("2006-01-02"),
		TokensByModel:  summary.TodayTokens,
		TotalTokens:    b.Used,
		PrimaryModel:   b.Model,
		DailyLimit:     b.Limit,
		RemainingEst:   b.Remaining,
		LimitExhausted: b.Used > 0 && b.Remaining == 0,
	}, nil
}

// handleSessionTokens sums the tokens of one transcript file.
func (s *Server) handleSessionTokens(args json.RawMessage) (any, error) {
	var params struct {
		TranscriptPath string `json:"transcript_path"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, err
	}
	if params.TranscriptPath == "" {
		return nil, errors.New("transcript_path is required")
	}

	return claude.ParseSessionTokens(params.TranscriptPath), nil
}
