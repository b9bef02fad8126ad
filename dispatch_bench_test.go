package main

import "testing"

func BenchmarkVirtualDispatch(b *testing.B) {
	var w Worker = NoopWorker{}
	for i := 0; i < b.N; i++ {
		sink = w.DoWork()
	}
}

func BenchmarkDirectCall(b *testing.B) {
	fn := workFunc
	for i := 0; i < b.N; i++ {
		sink = fn()
	}
}

func BenchmarkWrapperDispatch(b *testing.B) {
	w := NewWrapper(InnerObject{})
	for i := 0; i < b.N; i++ {
		sink = w.Call()
	}
}
