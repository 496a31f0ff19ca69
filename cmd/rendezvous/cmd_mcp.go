package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/rendezvous/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve rendezvous tools over MCP (stdio)",
		Long: `Start an MCP server on stdin/stdout exposing two tools:

  rendezvous_run     run a single search, optionally with pinned landings
  rendezvous_trials  run many seeded random searches and report statistics

Logs go to stderr. Runs are journaled with their run_id and every tool call
is recorded in audit.jsonl next to the journal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logDir, err := cfg.JournalDir()
			if err != nil {
				return fmt.Errorf("failed to resolve log directory: %w", err)
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:     "rendezvous",
				Version:  version,
				Settings: cfg,
				LogDir:   logDir,
				Logger:   newLogger(cmd, cfg),
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}
}
