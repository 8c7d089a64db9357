package dispatch_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/sghaida/idioms/dispatch"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func newBenchDispatcher() *dispatch.Func[string] {
	d := dispatch.New(func(any) (string, error) { return "fallback", nil })
	dispatch.Register(d, func(int) (string, error) { return "int", nil })
	dispatch.Register(d, func(fmt.Stringer) (string, error) { return "stringer", nil })
	return d
}

/*
   Benchmarks
*/

func BenchmarkCall_ExactMatch(b *testing.B) {
	d := newBenchDispatcher()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Call(42)
	}
}

func BenchmarkCall_InterfaceMatch(b *testing.B) {
	d := newBenchDispatcher()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Call(time.Second)
	}
}

func BenchmarkCall_Fallback(b *testing.B) {
	d := newBenchDispatcher()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Call(3.14)
	}
}
