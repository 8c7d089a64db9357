// Package wrap provides small generic combinators that wrap a callable with
// extra behavior without touching its source.
//
// A wrapped callable keeps the signature of the original and delegates to
// it; whatever the original returns (value and error alike) passes through
// unchanged. The wrapper only adds behavior around the call:
//
//   - Around / Around2: arbitrary before/after hooks
//   - Logged / Logged2: one structured log entry per call
//   - Timed / Timed2: one log entry carrying the call's wall time
//   - Retried: re-invocation on error via avast/retry-go
//
// Go has no variadic generics, so the combinators come in one-argument
// (Func) and two-argument (Func2) flavors; adapt higher arities with a
// small struct if you need them.
//
// Design goals:
//   - Transparent: the caller cannot tell a wrapped callable from the
//     original by its results.
//   - Composable: wrappers return the same Func type they accept, so they
//     stack in any order.
//   - Errors propagate: a failure inside the wrapped callable surfaces to
//     the caller as-is (Retried surfaces the last attempt's error).
//
// See examples/wrap for a runnable walk-through.
package wrap
