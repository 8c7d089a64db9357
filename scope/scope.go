package scope

import (
	"errors"
	"os"
	"time"

	"go.uber.org/zap"
)

// ErrNilStep is the panic value used when With or Timed is handed a nil
// step. The bracket is wired at the call site, so this is always a
// programmer error and fails fast.
var ErrNilStep = errors.New("scope: nil step")

// With brackets a resource: acquire, use, release.
//
// Release runs exactly once per successful acquisition — after a normal
// return, after a use error, and during the unwind if use panics (the panic
// then continues). If acquire fails, its error is returned unchanged and
// neither use nor release runs.
//
// A release error does not mask a use error; the two are joined.
func With[R any](acquire func() (R, error), release func(R) error, use func(R) error) (err error) {
	if acquire == nil || release == nil || use == nil {
		panic(ErrNilStep)
	}

	res, err := acquire()
	if err != nil {
		return err
	}

	defer func() {
		if relErr := release(res); relErr != nil {
			err = errors.Join(err, relErr)
		}
	}()

	return use(res)
}

// WithFile opens the named file for reading, hands it to use, and closes it
// on the way out.
func WithFile(name string, use func(*os.File) error) error {
	return With(
		func() (*os.File, error) { return os.Open(name) },
		func(f *os.File) error { return f.Close() },
		use,
	)
}

// Timed brackets fn with a wall clock and logs the elapsed time once the
// scope exits — normally, with an error, or via panic. The return value of
// fn passes through unchanged.
func Timed(log *zap.Logger, label string, fn func() error) error {
	if fn == nil {
		panic(ErrNilStep)
	}

	start := time.Now()
	defer func() {
		log.Info("elapsed",
			zap.String("label", label),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	return fn()
}
