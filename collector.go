package main

import (
	"fmt"
	"io"
)

// Collector renders the benchmark report. The report format is part of the
// tool's contract, so it is the only thing written to out (stdout in the
// program); diagnostics go to the stderr logger instead.
type Collector struct {
	out io.Writer
}

func NewCollector(out io.Writer) *Collector {
	return &Collector{out: out}
}

// Report prints the header and timing lines for one scenario.
func (c *Collector) Report(num int, r Result) {
	fmt.Fprintf(c.out, "%d. %s benchmark...\n", num, r.Scenario)
	fmt.Fprintf(c.out, "   Total time: %.6f seconds\n", r.Elapsed.Seconds())
}

// Summarize prints per-scenario statistics after a multi-round run.
func (c *Collector) Summarize(summaries []*Summary) {
	if len(summaries) == 0 {
		return
	}
	fmt.Fprintf(c.out, "summary over %d rounds:\n", len(summaries[0].Rounds))
	for _, s := range summaries {
		fmt.Fprintf(c.out, "   %s: min %.6f mean %.6f median %.6f stddev %.6f seconds\n",
			s.Scenario, s.Min(), s.Mean(), s.Median(), s.StdDev())
	}
}
