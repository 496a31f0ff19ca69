package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nvandessel/rendezvous/internal/config"
	"github.com/nvandessel/rendezvous/internal/logging"
)

// isolateHome sets HOME to a temp directory to avoid touching real ~/.rendezvous/
func isolateHome(t *testing.T, tmpDir string) {
	t.Helper()
	tmpHome := filepath.Join(tmpDir, "home")
	if err := os.MkdirAll(tmpHome, 0755); err != nil {
		t.Fatalf("Failed to create temp home: %v", err)
	}
	t.Setenv("HOME", tmpHome)
	t.Setenv("USERPROFILE", tmpHome)
}

func setupTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	tmpDir := t.TempDir()
	isolateHome(t, tmpDir)

	logDir := filepath.Join(tmpDir, "logs")
	server, err := NewServer(&Config{
		Name:    "test-server",
		Version: "v1.0.0",
		LogDir:  logDir,
	})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	t.Cleanup(func() { server.Close() })

	return server, logDir
}

func TestNewServer(t *testing.T) {
	server, logDir := setupTestServer(t)

	if server.server == nil {
		t.Error("Server.server is nil")
	}
	if server.settings == nil {
		t.Error("Server.settings is nil")
	}
	if got, want := server.journal.Path(), filepath.Join(logDir, logging.JournalFile); got != want {
		t.Errorf("journal path = %q, want %q", got, want)
	}
	if got, want := server.auditLogger.Path(), filepath.Join(logDir, AuditFile); got != want {
		t.Errorf("audit path = %q, want %q", got, want)
	}
}

func TestNewServer_NoLogDir(t *testing.T) {
	server, err := NewServer(&Config{Name: "test-server", Version: "v1.0.0"})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	defer server.Close()

	if server.journal != nil {
		t.Error("expected no journal without a log dir")
	}
	if server.auditLogger != nil {
		t.Error("expected no audit logger without a log dir")
	}
}

func TestNewServer_JournalDisabled(t *testing.T) {
	settings := config.Default()
	settings.Logging.Journal = false

	server, err := NewServer(&Config{
		Name:     "test-server",
		Version:  "v1.0.0",
		Settings: settings,
		LogDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	defer server.Close()

	if server.journal != nil {
		t.Error("expected no journal when logging.journal is false")
	}
	if server.auditLogger == nil {
		t.Error("expected audit logger to stay enabled")
	}
}

func TestNewServer_InvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.Robot.Acceleration = 1

	if _, err := NewServer(&Config{Name: "test-server", Settings: settings}); err == nil {
		t.Error("expected error for invalid settings")
	}
}

func TestServer_Close_Idempotent(t *testing.T) {
	server, _ := setupTestServer(t)

	if err := server.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := server.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestServer_ToolsOverTransport(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	serverTransport, clientTransport := sdk.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server Connect failed: %v", err)
	}
	defer serverSession.Close()

	client := sdk.NewClient(&sdk.Implementation{Name: "test-client", Version: "v1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client Connect failed: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, &sdk.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{ToolRun, ToolTrials} {
		if !names[want] {
			t.Errorf("tool %s not registered", want)
		}
	}

	res, err := session.CallTool(ctx, &sdk.CallToolParams{
		Name: ToolRun,
		Arguments: map[string]any{
			"first_name":  "A",
			"second_name": "B",
			"first_land":  -3,
			"second_land": 5,
			"max_steps":   100,
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("CallTool returned a tool error: %+v", res.Content)
	}
	if res.StructuredContent == nil {
		t.Error("expected structured content")
	}
}
