package main

import (
	"errors"
	"time"
)

// ErrNotImplemented is reported by the base Worker variant. The benchmark
// only ever dispatches to NoopWorker, so this path stays unexercised.
var ErrNotImplemented = errors.New("do work: not implemented")

// Worker is the virtual-dispatch capability: calls go through the
// interface table instead of straight to a known method.
type Worker interface {
	DoWork() error
}

// UnimplementedWorker is the base variant of the Worker contract.
type UnimplementedWorker struct{}

func (UnimplementedWorker) DoWork() error { return ErrNotImplemented }

// NoopWorker is the derived variant: it does nothing, as fast as possible.
type NoopWorker struct{}

func (NoopWorker) DoWork() error { return nil }

type VirtualRunner struct {
	worker Worker
}

func NewVirtualRunner(w Worker) *VirtualRunner {
	return &VirtualRunner{worker: w}
}

func (r *VirtualRunner) Name() string { return "Virtual dispatch (interface method)" }

func (r *VirtualRunner) Run(iterations int) Result {
	w := r.worker
	start := monotime()
	for i := 0; i < iterations; i++ {
		sink = w.DoWork()
	}
	elapsed := monotime() - start
	return Result{Scenario: r.Name(), Elapsed: time.Duration(elapsed)}
}
