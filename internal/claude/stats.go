package claude

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StatsFileName is the name of the stats cache file under the Claude home.
const StatsFileName = "stats-cache.json"

// StatsPath returns the full path to the stats cache for a Claude home.
func StatsPath(claudeHome string) string {
	return filepath.Join(claudeHome, StatsFileName)
}

// ParseStatsCache reads ~/.claude/stats-cache.json and returns the parsed
// stats. A missing file returns (nil, nil): callers treat a nil cache as
// "nothing to report", never as a fatal condition.
func ParseStatsCache(claudeHome string) (*StatsCache, error) {
	data, err := os.ReadFile(StatsPath(claudeHome))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var stats StatsCache
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
