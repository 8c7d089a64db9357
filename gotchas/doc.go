// Package gotchas collects small, testable demonstrations of slice and
// state sharing surprises.
//
// The dynamic-language classic is the mutable default argument: a default
// container created once and silently shared by every call. Go's nil slice
// is immune — append on nil always allocates — but Go has its own version
// of the trap: two appends growing from the same prefix with spare capacity
// fight over one backing array, and a slice returned from an accumulator
// aliases the accumulator's storage.
//
// Each function here exists to make one of those behaviors observable, with
// the safe variant (clone before append, snapshot on read) next to it.
// The tests assert the surprising behavior on purpose; read them as the
// documentation.
package gotchas
