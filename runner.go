package main

import "time"

// Runner executes one dispatch scenario: a tight loop of no-op calls
// routed through a single dispatch mechanism.
type Runner interface {
	Name() string
	Run(iterations int) Result
}

type Result struct {
	Scenario string
	Round    int
	Elapsed  time.Duration
}

// sink keeps the dispatch calls observable so the loop bodies cannot be
// elided.
var sink error
