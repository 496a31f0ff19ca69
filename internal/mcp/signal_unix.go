//go:build !windows

package mcp

import (
	"os"
	"syscall"
)

// shutdownSignals end a stdio session.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
