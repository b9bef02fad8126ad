package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

func TestProgressReporterThrottles(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	// One token, refilled far slower than the test runs.
	p := NewProgressReporter(logger, rate.Every(time.Hour), 1)
	res := Result{Scenario: "test", Elapsed: time.Millisecond}
	for round := 1; round <= 5; round++ {
		p.RoundDone(round, 5, res)
	}

	if got := strings.Count(buf.String(), "round done"); got != 1 {
		t.Fatalf("expected 1 progress line, got %d:\n%s", got, buf.String())
	}
}
