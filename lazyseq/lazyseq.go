package lazyseq

import "iter"

// Number constrains the element types Sum can total.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range produces 0, 1, ..., n-1. An n <= 0 produces nothing.
func Range(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Reverse walks a slice from its last element to its first without copying.
func Reverse[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// ReverseRunes walks a string rune by rune from the end to the start.
func ReverseRunes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		runes := []rune(s)
		for i := len(runes) - 1; i >= 0; i-- {
			if !yield(runes[i]) {
				return
			}
		}
	}
}

// Map transforms each produced value with f, lazily.
func Map[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter produces only the values keep accepts.
func Filter[E any](seq iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take produces at most n values and then stops the upstream producer.
func Take[E any](seq iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range seq {
			if !yield(v) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// Tap produces the same values as seq, invoking onYield for each one as it
// is produced. Useful for observing how far a lazy pipeline actually ran.
func Tap[E any](seq iter.Seq[E], onYield func(E)) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range seq {
			if onYield != nil {
				onYield(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ZipWith pairs values from a and b positionally and combines each pair
// with f, stopping at the shorter sequence.
func ZipWith[A, B, C any](a iter.Seq[A], b iter.Seq[B], f func(A, B) C) iter.Seq[C] {
	return func(yield func(C) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for av := range a {
			bv, ok := next()
			if !ok {
				return
			}
			if !yield(f(av, bv)) {
				return
			}
		}
	}
}

// Sum drains seq and totals its values.
func Sum[E Number](seq iter.Seq[E]) E {
	var total E
	for v := range seq {
		total += v
	}
	return total
}
