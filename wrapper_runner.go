package main

import "time"

// InnerObject exposes the no-op action the wrapper delegates to.
type InnerObject struct{}

func (InnerObject) Action() error { return nil }

type actioner interface {
	Action() error
}

// Wrapper owns one inner value and forwards each Call to its Action,
// adding exactly one layer of indirection. Instantiating it with a
// concrete inner type keeps the delegated call statically dispatched.
type Wrapper[T actioner] struct {
	inner T
}

func NewWrapper[T actioner](inner T) *Wrapper[T] {
	return &Wrapper[T]{inner: inner}
}

func (w *Wrapper[T]) Call() error { return w.inner.Action() }

type WrapperRunner[T actioner] struct {
	wrapper *Wrapper[T]
}

func NewWrapperRunner[T actioner](w *Wrapper[T]) *WrapperRunner[T] {
	return &WrapperRunner[T]{wrapper: w}
}

func (r *WrapperRunner[T]) Name() string { return "Wrapper dispatch (functor)" }

func (r *WrapperRunner[T]) Run(iterations int) Result {
	w := r.wrapper
	start := monotime()
	for i := 0; i < iterations; i++ {
		sink = w.Call()
	}
	elapsed := monotime() - start
	return Result{Scenario: r.Name(), Elapsed: time.Duration(elapsed)}
}
