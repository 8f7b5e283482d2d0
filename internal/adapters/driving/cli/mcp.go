package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/adapters/driving/mcp"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
	"github.com/custodia-labs/phonet/internal/logger"
)

// configWatcher reloads the MCP rate limit while the server runs.
var configWatcher driven.ConfigWatcher

// SetConfigWatcher sets the watcher used by long-running commands.
func SetConfigWatcher(w driven.ConfigWatcher) {
	configWatcher = w
}

// mcpRunner starts a configured server. Tests replace it to avoid
// blocking on stdio.
var mcpRunner = func(ctx context.Context, server *mcp.Server, addr string) error {
	if addr != "" {
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead. HTTP requests are rate limited
by the mcp.rate_limit and mcp.burst settings, which are reloaded when the
config file changes.

Tools: parse, render, transform, generalize, enumerate
Resources: phonet://inventories, phonet://inventories/{inventoryId}

Examples:
  # Stdio mode (default, for Claude Desktop)
  phonet mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  phonet mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "phonet": {
        "command": "/path/to/phonet",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Transcription: transcriptionService,
		Features:      featureService,
		Inventory:     inventoryService,
		Settings:      settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if configWatcher != nil {
		go func() {
			if err := configWatcher.Watch(ctx, server.ReloadSettings); err != nil && ctx.Err() == nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	addr := ""
	if port > 0 {
		addr = fmt.Sprintf(":%d", port)
		cfg := server.RateLimiter().Config()
		// stdout carries JSON-RPC in stdio mode, so only HTTP mode prints.
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		logger.Info("Rate limit %g requests/s, burst %d", cfg.RequestsPerSecond, cfg.BurstSize)
	}

	return mcpRunner(ctx, server, addr)
}
