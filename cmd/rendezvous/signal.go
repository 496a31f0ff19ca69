package main

import (
	"context"
	"os/signal"
)

// withSignals returns a context cancelled on the first interrupt.
func withSignals(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, interruptSignals...)
}
