package main

import "time"

// workFunc is the free no-op invoked through a first-class function value.
func workFunc() error { return nil }

type DirectRunner struct {
	fn func() error
}

func NewDirectRunner(fn func() error) *DirectRunner {
	return &DirectRunner{fn: fn}
}

func (r *DirectRunner) Name() string { return "Direct call (function value)" }

func (r *DirectRunner) Run(iterations int) Result {
	fn := r.fn
	start := monotime()
	for i := 0; i < iterations; i++ {
		sink = fn()
	}
	elapsed := monotime() - start
	return Result{Scenario: r.Name(), Elapsed: time.Duration(elapsed)}
}
