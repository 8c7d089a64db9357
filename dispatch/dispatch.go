package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrImplPanic is returned if an implementation panics; the panic value is
// attached to the returned error.
var ErrImplPanic = errors.New("dispatch: panic during implementation")

// UnsupportedTypeError is returned by the default fallback when no
// implementation matches the argument's runtime type.
type UnsupportedTypeError struct {
	// Type is reflect.TypeOf(arg).String(), or "<nil>" for a nil argument.
	Type string
}

// Error implements the error interface.
func (e UnsupportedTypeError) Error() string {
	// Example: dispatch: no implementation for type "time.Time"
	return "dispatch: no implementation for type " + strconv.Quote(e.Type)
}

// Func dispatches on the runtime type of its argument and produces an R.
//
// Zero value is not usable; construct with New.
type Func[R any] struct {
	impls    map[reflect.Type]func(any) (R, error)
	ifaces   []reflect.Type // registered interface types, registration order
	fallback func(any) (R, error)
}

// New constructs a dispatcher. fallback handles arguments whose type has no
// registered implementation; pass nil to fail such calls with
// UnsupportedTypeError.
func New[R any](fallback func(any) (R, error)) *Func[R] {
	if fallback == nil {
		fallback = func(arg any) (R, error) {
			var zero R
			return zero, UnsupportedTypeError{Type: typeName(arg)}
		}
	}
	return &Func[R]{
		impls:    make(map[reflect.Type]func(any) (R, error)),
		fallback: fallback,
	}
}

// Register adds (or replaces) the implementation for argument type T and
// returns the dispatcher for chaining.
//
// T may be a concrete type or an interface. Concrete types match exactly;
// interface types match any argument implementing them, in registration
// order, after the exact match has been tried.
func Register[T any, R any](d *Func[R], impl func(T) (R, error)) *Func[R] {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	if _, replacing := d.impls[typ]; !replacing && typ.Kind() == reflect.Interface {
		d.ifaces = append(d.ifaces, typ)
	}
	d.impls[typ] = func(arg any) (R, error) {
		return impl(arg.(T))
	}
	return d
}

// Call resolves the implementation for arg's runtime type and invokes it.
// A panic inside the selected implementation is converted into an error
// wrapping ErrImplPanic.
func (d *Func[R]) Call(arg any) (res R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero R
			res = zero
			err = fmt.Errorf("%w: %v", ErrImplPanic, rec)
		}
	}()

	return d.resolve(arg)(arg)
}

func (d *Func[R]) resolve(arg any) func(any) (R, error) {
	t := reflect.TypeOf(arg)
	if t == nil {
		return d.fallback
	}
	if impl, ok := d.impls[t]; ok {
		return impl
	}
	for _, iface := range d.ifaces {
		if t.Implements(iface) {
			return d.impls[iface]
		}
	}
	return d.fallback
}

// Supports reports whether arg would resolve to a registered implementation
// rather than the fallback.
func (d *Func[R]) Supports(arg any) bool {
	t := reflect.TypeOf(arg)
	if t == nil {
		return false
	}
	if _, ok := d.impls[t]; ok {
		return true
	}
	for _, iface := range d.ifaces {
		if t.Implements(iface) {
			return true
		}
	}
	return false
}

func typeName(arg any) string {
	t := reflect.TypeOf(arg)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
