// Package scope pairs resource acquisition with guaranteed release.
//
// With runs acquire, hands the resource to use, and releases it on the way
// out — whether use returns normally, returns an error, or panics. Release
// runs exactly once per successful acquisition, on every exit path:
//
//	err := scope.With(
//	    func() (*os.File, error) { return os.Open("some_file") },
//	    func(f *os.File) error { return f.Close() },
//	    func(f *os.File) error {
//	        _, err := io.Copy(dst, f)
//	        return err
//	    },
//	)
//
// Error semantics: an acquire failure is returned as-is and use never runs;
// a use failure propagates to the caller; a release failure is joined onto
// whatever use returned (errors.Join), so neither gets lost.
//
// Timed is the measuring variant: it brackets a function call with a wall
// clock and logs the elapsed time on every exit path, including panics.
package scope
