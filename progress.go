package main

import (
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// ProgressReporter logs per-round completions without letting large
// -repeat runs flood stderr. The benchmark loops themselves are never
// throttled, only the log lines about them.
type ProgressReporter struct {
	limiter *rate.Limiter
	logger  *log.Logger
}

func NewProgressReporter(logger *log.Logger, r rate.Limit, b int) *ProgressReporter {
	return &ProgressReporter{
		limiter: rate.NewLimiter(r, b),
		logger:  logger,
	}
}

func (p *ProgressReporter) RoundDone(round, total int, r Result) {
	if !p.limiter.Allow() {
		return
	}
	p.logger.Debug("round done",
		"scenario", r.Scenario,
		"round", round,
		"of", total,
		"elapsed", r.Elapsed,
	)
}
