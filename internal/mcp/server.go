// Package mcp provides an MCP (Model Context Protocol) server for rendezvous.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/rendezvous/internal/config"
	"github.com/nvandessel/rendezvous/internal/events"
	"github.com/nvandessel/rendezvous/internal/logging"
)

// Server wraps the MCP SDK server and exposes rendezvous searches as tools.
type Server struct {
	server      *sdk.Server
	settings    *config.Config
	limiters    toolLimiters
	auditLogger *AuditLogger
	journal     *logging.Journal
	sink        events.Sink
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "rendezvous")
	Version string // Server version

	// Settings supplies defaults for tool arguments. Nil uses config.Default().
	Settings *config.Config

	// LogDir receives the robot journal and the audit log. Empty disables both.
	LogDir string

	// Logger receives operational logs. Nil discards them.
	Logger *slog.Logger
}

// NewServer creates a new MCP server with rendezvous tools.
func NewServer(cfg *Config) (*Server, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Server{
		settings: settings,
		limiters: newToolLimiters(),
	}

	sinks := []events.Sink{events.NewSlogSink(logger)}
	if cfg.LogDir != "" {
		if settings.Logging.Journal {
			journal, err := logging.OpenJournal(cfg.LogDir)
			if err != nil {
				return nil, fmt.Errorf("failed to open journal: %w", err)
			}
			s.journal = journal
			sinks = append(sinks, journal)
		}
		s.auditLogger = NewAuditLogger(cfg.LogDir)
	}
	s.sink = events.Multi(sinks...)

	s.server = sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			logger.Debug("mcp client initialized")
		},
	})

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	err := s.server.Run(ctx, &sdk.StdioTransport{})

	if closeErr := s.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// Close closes the journal and audit log.
func (s *Server) Close() error {
	var firstErr error
	if err := s.journal.Close(); err != nil {
		firstErr = err
	}
	if err := s.auditLogger.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
