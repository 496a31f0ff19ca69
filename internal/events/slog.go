package events

import (
	"context"
	"log/slog"
)

// SlogSink forwards events to a slog.Logger at the level each kind maps to.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to logger. A nil logger uses slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Emit implements Sink.
func (s *SlogSink) Emit(e Event) {
	s.logger.Log(context.Background(), e.Level(), Format(e), Attrs(e)...)
}
