// Package dispatch selects a function implementation by the runtime type of
// its first argument.
//
// A Func holds a table from argument type to implementation plus a fallback
// for everything unregistered:
//
//	serialize := dispatch.New[any](nil)
//	dispatch.Register(serialize, func(u User) (any, error) { ... })
//	dispatch.Register(serialize, func(t time.Time) (any, error) { ... })
//
//	out, err := serialize.Call(someValue)
//
// Resolution order mirrors what you would expect from single dispatch in a
// dynamic language: the exact concrete type wins; otherwise the first
// registered interface type the argument implements; otherwise the
// fallback. With a nil fallback, unmatched arguments fail with
// UnsupportedTypeError.
//
// Registration is chainable and happens once at wiring time; Call is the
// hot path and does a map lookup plus, at worst, a linear walk over the
// registered interface types.
package dispatch
