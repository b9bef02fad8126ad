package main

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

// DefaultIterations is the workload size the benchmark was designed around.
// Override with -n/-iterations or the DISPATCH_ITERATIONS environment
// variable; the flag wins when both are set.
const DefaultIterations = 100_000_000

type Config struct {
	Iterations int
	Repeat     int
	MaxProc    int
	Verbose    bool
}

var cfg Config

func init() {
	def := getenvInt("DISPATCH_ITERATIONS", DefaultIterations)

	flag.IntVar(&cfg.Iterations, "n", def, "dispatch calls per scenario")
	flag.IntVar(&cfg.Iterations, "iterations", def, "dispatch calls per scenario")

	flag.IntVar(&cfg.Repeat, "r", 1, "timed rounds per scenario")
	flag.IntVar(&cfg.Repeat, "repeat", 1, "timed rounds per scenario")

	flag.IntVar(&cfg.MaxProc, "maxproc", 0, "GOMAXPROC runtime setting")

	flag.BoolVar(&cfg.Verbose, "v", false, "debug logging")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "debug logging")
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.New("iterations must be positive")
	}
	if c.Repeat <= 0 {
		return errors.New("repeat must be positive")
	}
	return nil
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("ignoring invalid value", "var", key, "value", v)
		return def
	}
	return i
}
