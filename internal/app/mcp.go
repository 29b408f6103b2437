package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dev-HyunSang/oh-my-claude-token/internal/config"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/mcp"
	"github.com/Dev-HyunSang/oh-my-claude-token/internal/usage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server exposing token usage tools",
	Long: `Run a Model Context Protocol server over stdio. The server exposes
usage_report, usage_today, and session_tokens as tools so that agents
can query token consumption directly.

Register it in Claude Code:
  claude mcp add token-usage -- oh-my-claude-token mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s := mcp.NewServer(cfg.ClaudeHome, usage.DefaultLimits())
	return s.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
