package wrap

import (
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// ErrNilFunc is the panic value used when a combinator is handed a nil
// callable. Wrapping happens at construction time, so this is always a
// programmer error and fails fast instead of producing a broken Func.
var ErrNilFunc = errors.New("wrap: nil function")

// Func is a one-argument callable that can fail.
//
// The error slot is part of the contract: wrappers must let failures from
// the original pass through, and Retried needs to see them.
type Func[T, R any] func(T) (R, error)

// Func2 is a two-argument callable that can fail.
type Func2[A, B, R any] func(A, B) (R, error)

// Around wraps fn with before/after hooks.
//
// before runs ahead of the delegated call, after runs once the call has
// returned (with the argument, result, and error the caller will see).
// A nil hook is skipped. The result and error of fn are returned unchanged.
func Around[T, R any](fn Func[T, R], before func(T), after func(T, R, error)) Func[T, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(arg T) (R, error) {
		if before != nil {
			before(arg)
		}
		res, err := fn(arg)
		if after != nil {
			after(arg, res, err)
		}
		return res, err
	}
}

// Around2 is Around for two-argument callables.
func Around2[A, B, R any](fn Func2[A, B, R], before func(A, B), after func(A, B, R, error)) Func2[A, B, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(a A, b B) (R, error) {
		if before != nil {
			before(a, b)
		}
		res, err := fn(a, b)
		if after != nil {
			after(a, b, res, err)
		}
		return res, err
	}
}

// Logged wraps fn so that every call emits exactly one structured log
// entry carrying the callable's name and, on failure, the error.
//
// The entry is written after the delegated call so it can report the
// outcome. Results and errors pass through unchanged.
func Logged[T, R any](log *zap.Logger, name string, fn Func[T, R]) Func[T, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(arg T) (R, error) {
		res, err := fn(arg)
		if err != nil {
			log.Warn("call failed", zap.String("func", name), zap.Error(err))
		} else {
			log.Info("call", zap.String("func", name))
		}
		return res, err
	}
}

// Logged2 is Logged for two-argument callables.
func Logged2[A, B, R any](log *zap.Logger, name string, fn Func2[A, B, R]) Func2[A, B, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(a A, b B) (R, error) {
		res, err := fn(a, b)
		if err != nil {
			log.Warn("call failed", zap.String("func", name), zap.Error(err))
		} else {
			log.Info("call", zap.String("func", name))
		}
		return res, err
	}
}

// Timed wraps fn so that every call emits one log entry with the call's
// wall-clock duration.
func Timed[T, R any](log *zap.Logger, name string, fn Func[T, R]) Func[T, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(arg T) (R, error) {
		start := time.Now()
		res, err := fn(arg)
		log.Info("call timed",
			zap.String("func", name),
			zap.Duration("elapsed", time.Since(start)),
		)
		return res, err
	}
}

// Timed2 is Timed for two-argument callables.
func Timed2[A, B, R any](log *zap.Logger, name string, fn Func2[A, B, R]) Func2[A, B, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return func(a A, b B) (R, error) {
		start := time.Now()
		res, err := fn(a, b)
		log.Info("call timed",
			zap.String("func", name),
			zap.Duration("elapsed", time.Since(start)),
		)
		return res, err
	}
}

// Retried wraps fn so a failing call is re-invoked per the retry options.
//
// LastErrorOnly is enabled before applying opts, so on exhaustion the
// caller sees the final attempt's error exactly as fn returned it (the
// transparency contract). Pass your own retry options to tune attempts,
// delay, or the retryable predicate.
func Retried[T, R any](fn Func[T, R], opts ...retry.Option) Func[T, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	merged := append([]retry.Option{retry.LastErrorOnly(true)}, opts...)
	return func(arg T) (R, error) {
		return retry.DoWithData(func() (R, error) {
			return fn(arg)
		}, merged...)
	}
}
