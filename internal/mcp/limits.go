package mcp

import (
	"errors"
	"fmt"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by a tool call that exceeded its rate limit.
var ErrRateLimited = errors.New("rate limit exceeded")

// toolLimiters maps tool names to their token buckets.
type toolLimiters map[string]*rate.Limiter

// newToolLimiters creates the default per-tool limits. Trials are far more
// expensive than single runs, so they get a much smaller budget.
func newToolLimiters() toolLimiters {
	return toolLimiters{
		ToolRun:    rate.NewLimiter(rate.Limit(10), 20),
		ToolTrials: rate.NewLimiter(rate.Limit(0.5), 3),
	}
}

// check consumes a token for tool. Tools without a limiter are unlimited.
func (tl toolLimiters) check(tool string) error {
	l, ok := tl[tool]
	if !ok {
		return nil
	}
	if !l.Allow() {
		return fmt.Errorf("%s: %w, try again shortly", tool, ErrRateLimited)
	}
	return nil
}
