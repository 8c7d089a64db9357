package gotchas

import "slices"

// AppendTo appends v to lst and returns the result, exactly as append does.
//
// With a nil lst this is safe: append on nil allocates, so two calls with
// nil never share anything. The trap is calling it twice with the SAME
// slice that has spare capacity — both results then point into one backing
// array and the second call overwrites the first's element.
func AppendTo(lst []int, v int) []int {
	return append(lst, v)
}

// AppendSafe appends v to a clone of lst, so the result never shares a
// backing array with the input or with other calls.
func AppendSafe(lst []int, v int) []int {
	return append(slices.Clone(lst), v)
}

// Tally accumulates values. The zero Tally is ready to use.
type Tally struct {
	values []int
}

// Add records a value.
func (t *Tally) Add(v int) {
	t.values = append(t.values, v)
}

// Values returns the accumulated values WITHOUT copying: the returned slice
// aliases the tally's storage, so later Adds (or writes through the
// returned slice) are visible on both sides. This is the trap.
func (t *Tally) Values() []int {
	return t.values
}

// Snapshot returns an independent copy of the accumulated values. This is
// the fix.
func (t *Tally) Snapshot() []int {
	return slices.Clone(t.values)
}
