// Package config provides configuration loading and defaults.
package config

// DefaultClaudeHome is the default location of Claude Code's data directory.
const DefaultClaudeHome = "~/.claude"

// DefaultConfigDir is the default location for oh-my-claude-token configuration.
const DefaultConfigDir = "~/.config/oh-my-claude-token"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWatchInterval is how often the watch command re-snapshots usage.
const DefaultWatchInterval = "2m"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 30,
}

// DefaultWatch holds the default watch preferences.
var DefaultWatch = Watch{
	Interval:     DefaultWatchInterval,
	BudgetTokens: 0,
	Notify:       false,
}
