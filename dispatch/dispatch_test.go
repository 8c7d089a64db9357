package dispatch_test

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/idioms/dispatch"
)

// user is the demo type from the serialization scenario.
type user struct {
	Name     string
	Age      int
	JoinDate time.Time
}

// newSerializer wires the single-dispatch serializer used across the tests:
// user -> map, time.Time -> RFC 3339, string-set -> sorted slice.
func newSerializer() *dispatch.Func[any] {
	d := dispatch.New[any](nil)
	dispatch.Register(d, func(u user) (any, error) {
		return map[string]any{
			"name":      u.Name,
			"age":       u.Age,
			"join_date": u.JoinDate.Format(time.RFC3339),
		}, nil
	})
	dispatch.Register(d, func(t time.Time) (any, error) {
		return t.Format(time.RFC3339), nil
	})
	dispatch.Register(d, func(set map[string]struct{}) (any, error) {
		out := make([]string, 0, len(set))
		for k := range set {
			out = append(out, k)
		}
		sort.Strings(out)
		return out, nil
	})
	return d
}

//
// -----------------------------------------------------------------------------
// Concrete-type dispatch
// -----------------------------------------------------------------------------

// TestCall_RegisteredConcreteType verifies each registered type hits its own
// implementation.
func TestCall_RegisteredConcreteType(t *testing.T) {
	t.Parallel()

	d := newSerializer()
	join := time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)

	got, err := d.Call(user{Name: "Alice", Age: 30, JoinDate: join})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":      "Alice",
		"age":       30,
		"join_date": "2020-05-17T00:00:00Z",
	}, got)

	got, err = d.Call(join)
	require.NoError(t, err)
	assert.Equal(t, "2020-05-17T00:00:00Z", got)

	got, err = d.Call(map[string]struct{}{"go": {}, "serialization": {}, "example": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"example", "go", "serialization"}, got)
}

// TestCall_UnregisteredTypeHitsDefault verifies the default fallback fails
// with a typed error naming the argument type.
func TestCall_UnregisteredTypeHitsDefault(t *testing.T) {
	t.Parallel()

	d := newSerializer()

	_, err := d.Call(3.14)
	require.Error(t, err)

	var unsupported dispatch.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "float64", unsupported.Type)
}

// TestCall_CustomFallback verifies an explicit fallback replaces the
// failing default.
func TestCall_CustomFallback(t *testing.T) {
	t.Parallel()

	d := dispatch.New(func(arg any) (string, error) {
		return fmt.Sprintf("default:%v", arg), nil
	})
	dispatch.Register(d, func(n int) (string, error) {
		return fmt.Sprintf("int:%d", n), nil
	})

	got, err := d.Call(7)
	require.NoError(t, err)
	assert.Equal(t, "int:7", got)

	got, err = d.Call("anything")
	require.NoError(t, err)
	assert.Equal(t, "default:anything", got)
}

// TestCall_NilArgumentHitsFallback verifies a nil argument cannot match any
// type and goes to the fallback.
func TestCall_NilArgumentHitsFallback(t *testing.T) {
	t.Parallel()

	d := newSerializer()

	_, err := d.Call(nil)
	require.Error(t, err)

	var unsupported dispatch.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "<nil>", unsupported.Type)
}

//
// -----------------------------------------------------------------------------
// Interface dispatch
// -----------------------------------------------------------------------------

// TestCall_InterfaceMatch verifies an argument whose concrete type is
// unregistered still dispatches via a registered interface it implements.
func TestCall_InterfaceMatch(t *testing.T) {
	t.Parallel()

	d := dispatch.New[string](nil)
	dispatch.Register(d, func(s fmt.Stringer) (string, error) {
		return "stringer:" + s.String(), nil
	})

	got, err := d.Call(time.Minute) // time.Duration implements fmt.Stringer
	require.NoError(t, err)
	assert.Equal(t, "stringer:1m0s", got)
}

// TestCall_ExactBeatsInterface verifies the concrete-type entry wins over a
// matching interface entry.
func TestCall_ExactBeatsInterface(t *testing.T) {
	t.Parallel()

	d := dispatch.New[string](nil)
	dispatch.Register(d, func(s fmt.Stringer) (string, error) { return "iface", nil })
	dispatch.Register(d, func(time.Duration) (string, error) { return "exact", nil })

	got, err := d.Call(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "exact", got)
}

// TestCall_InterfaceRegistrationOrder verifies that when two registered
// interfaces both match, the first registered wins.
func TestCall_InterfaceRegistrationOrder(t *testing.T) {
	t.Parallel()

	d := dispatch.New[string](nil)
	dispatch.Register(d, func(error) (string, error) { return "error", nil })
	dispatch.Register(d, func(fmt.Stringer) (string, error) { return "stringer", nil })

	// *stringyError implements both error and fmt.Stringer.
	got, err := d.Call(&stringyError{})
	require.NoError(t, err)
	assert.Equal(t, "error", got)
}

type stringyError struct{}

func (*stringyError) Error() string  { return "e" }
func (*stringyError) String() string { return "s" }

//
// -----------------------------------------------------------------------------
// Registration semantics
// -----------------------------------------------------------------------------

// TestRegister_ChainsAndReplaces verifies Register returns the dispatcher
// for chaining and re-registering a type replaces the implementation.
func TestRegister_ChainsAndReplaces(t *testing.T) {
	t.Parallel()

	d := dispatch.New[string](nil)
	ret := dispatch.Register(d, func(int) (string, error) { return "v1", nil })
	require.Same(t, d, ret)

	dispatch.Register(d, func(int) (string, error) { return "v2", nil })

	got, err := d.Call(1)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

// TestSupports verifies Supports distinguishes registered from fallback
// arguments without invoking anything.
func TestSupports(t *testing.T) {
	t.Parallel()

	d := newSerializer()

	assert.True(t, d.Supports(user{}))
	assert.True(t, d.Supports(time.Now()))
	assert.False(t, d.Supports(3.14))
	assert.False(t, d.Supports(nil))
}

//
// -----------------------------------------------------------------------------
// Failure handling
// -----------------------------------------------------------------------------

// TestCall_PanicConvertedToError verifies a panicking implementation becomes
// an ErrImplPanic-wrapped error instead of unwinding the caller.
func TestCall_PanicConvertedToError(t *testing.T) {
	t.Parallel()

	d := dispatch.New[string](nil)
	dispatch.Register(d, func(int) (string, error) { panic("kaboom") })

	res, err := d.Call(1)
	require.Error(t, err)
	assert.Empty(t, res)
	assert.ErrorIs(t, err, dispatch.ErrImplPanic)
	assert.Contains(t, err.Error(), "kaboom")
}

// TestCall_ImplementationErrorPropagates verifies an ordinary error from the
// selected implementation reaches the caller unchanged.
func TestCall_ImplementationErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := fmt.Errorf("boom")
	d := dispatch.New[string](nil)
	dispatch.Register(d, func(int) (string, error) { return "", boom })

	_, err := d.Call(1)
	require.Error(t, err)
	assert.Same(t, boom, err)
}
