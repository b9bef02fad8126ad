package main

import (
	"flag"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// run executes the three scenarios strictly in order: a scenario starts
// only after the previous one's report lines are written.
func run(cfg Config, out io.Writer, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MaxProc > 0 {
		logger.Debug("setting GOMAXPROCS", "maxproc", cfg.MaxProc)
		runtime.GOMAXPROCS(cfg.MaxProc)
	}
	logger.Debug("starting", "iterations", cfg.Iterations, "repeat", cfg.Repeat)

	runners := []Runner{
		NewVirtualRunner(NoopWorker{}),
		NewDirectRunner(workFunc),
		NewWrapperRunner(NewWrapper(InnerObject{})),
	}

	collector := NewCollector(out)
	progress := NewProgressReporter(logger, rate.Every(time.Second), 1)
	summaries := make([]*Summary, len(runners))

	for i, r := range runners {
		summaries[i] = &Summary{Scenario: r.Name()}
		for round := 1; round <= cfg.Repeat; round++ {
			res := r.Run(cfg.Iterations)
			res.Round = round
			if round == 1 {
				collector.Report(i+1, res)
			}
			summaries[i].Add(res)
			progress.RoundDone(round, cfg.Repeat, res)
		}
	}
	if cfg.Repeat > 1 {
		collector.Summarize(summaries)
	}
	return nil
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dispatch"})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal("benchmark failed", "err", err)
	}
}
