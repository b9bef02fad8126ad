package main

import (
	"bytes"
	"testing"
	"time"
)

func TestCollectorReportFormat(t *testing.T) {
	var buf bytes.Buffer
	c := NewCollector(&buf)
	c.Report(2, Result{
		Scenario: "Direct call (function value)",
		Elapsed:  123456 * time.Microsecond,
	})

	want := "2. Direct call (function value) benchmark...\n" +
		"   Total time: 0.123456 seconds\n"
	if buf.String() != want {
		t.Fatalf("report mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestCollectorSummarize(t *testing.T) {
	var buf bytes.Buffer
	c := NewCollector(&buf)
	s := &Summary{Scenario: "Direct call (function value)"}
	s.Add(Result{Elapsed: time.Second})
	s.Add(Result{Elapsed: 2 * time.Second})
	c.Summarize([]*Summary{s})

	got := buf.String()
	want := "summary over 2 rounds:\n" +
		"   Direct call (function value): min 1.000000 mean 1.500000 median 1.000000 stddev 0.707107 seconds\n"
	if got != want {
		t.Fatalf("summary mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestCollectorSummarizeEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewCollector(&buf).Summarize(nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
