package typebuild

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyClassName is returned by Build when the builder was created
	// with an empty name.
	ErrEmptyClassName = errors.New("typebuild: empty class name")

	// ErrNilTransform is returned by Build when Apply was handed a nil hook.
	ErrNilTransform = errors.New("typebuild: nil transform")

	// ErrNilMethod is returned by Build when Method was handed a nil body.
	ErrNilMethod = errors.New("typebuild: nil method body")

	// ErrMethodPanic is returned if a method implementation panics; the
	// panic value is attached to the returned error.
	ErrMethodPanic = errors.New("typebuild: panic during method call")
)

// DuplicateMemberError is returned when an attribute or method is declared
// under a name that already exists on the class being built, or when a
// transform renames two members onto the same name.
type DuplicateMemberError struct{ Name string }

// Error implements the error interface.
func (e DuplicateMemberError) Error() string {
	// Example: typebuild: duplicate member "NAME"
	return "typebuild: duplicate member " + strconv.Quote(e.Name)
}

// UnknownMemberError is returned when an instance is asked for a member the
// class does not declare. The class shape is fixed at build time.
type UnknownMemberError struct {
	Class  string
	Member string
}

// Error implements the error interface.
func (e UnknownMemberError) Error() string {
	// Example: typebuild: class "Person" has no member "greet"
	return "typebuild: class " + strconv.Quote(e.Class) + " has no member " + strconv.Quote(e.Member)
}

// TransformError wraps a failure raised by a Transform during Build.
type TransformError struct {
	Class string
	Err   error
}

// Error implements the error interface.
func (e TransformError) Error() string {
	return "typebuild: transform failed for class " + strconv.Quote(e.Class) + ": " + e.Err.Error()
}

// Unwrap exposes the transform's underlying error to errors.Is/As.
func (e TransformError) Unwrap() error { return e.Err }

// Method is behavior attached to a class. It receives the instance it was
// invoked on plus the call arguments.
type Method func(self *Instance, args ...any) (any, error)

// Members is the mutable view of a class under construction that Transform
// hooks operate on: plain attributes plus named methods.
type Members struct {
	Attrs   map[string]any
	Methods map[string]Method
}

// Transform is the construction-time hook. It runs exactly once, while the
// class is being built, and returns the member set the class is frozen
// with. Returning an error aborts the build.
type Transform func(className string, m Members) (Members, error)

// UpperAttrs is the demo transform: it renames every attribute and method
// to its upper-cased form at class-creation time, so every instance of the
// built class exposes NAME where name was declared.
func UpperAttrs(_ string, m Members) (Members, error) {
	out := Members{
		Attrs:   make(map[string]any, len(m.Attrs)),
		Methods: make(map[string]Method, len(m.Methods)),
	}
	for k, v := range m.Attrs {
		upper := strings.ToUpper(k)
		if _, dup := out.Attrs[upper]; dup {
			return Members{}, DuplicateMemberError{Name: upper}
		}
		out.Attrs[upper] = v
	}
	for k, v := range m.Methods {
		upper := strings.ToUpper(k)
		if _, dup := out.Methods[upper]; dup {
			return Members{}, DuplicateMemberError{Name: upper}
		}
		out.Methods[upper] = v
	}
	return out, nil
}

// Builder assembles a Class. Declarations chain; validation is deferred to
// Build so wiring reads as one expression. The first declaration error
// sticks and is reported by Build.
type Builder struct {
	name       string
	attrs      map[string]any
	methods    map[string]Method
	transforms []Transform
	err        error
}

// New starts a builder for a class with the given name.
func New(name string) *Builder {
	return &Builder{
		name:    name,
		attrs:   make(map[string]any),
		methods: make(map[string]Method),
	}
}

// Attr declares a plain attribute. Redeclaring a name fails the build with
// DuplicateMemberError.
func (b *Builder) Attr(name string, val any) *Builder {
	if b.err != nil {
		return b
	}
	if b.taken(name) {
		b.err = DuplicateMemberError{Name: name}
		return b
	}
	b.attrs[name] = val
	return b
}

// Method declares a named behavior. A nil body fails the build.
func (b *Builder) Method(name string, m Method) *Builder {
	if b.err != nil {
		return b
	}
	if m == nil {
		b.err = ErrNilMethod
		return b
	}
	if b.taken(name) {
		b.err = DuplicateMemberError{Name: name}
		return b
	}
	b.methods[name] = m
	return b
}

// Apply schedules a construction-time hook. Hooks run in the order they
// were applied, each receiving the member set the previous one produced.
func (b *Builder) Apply(t Transform) *Builder {
	if b.err != nil {
		return b
	}
	if t == nil {
		b.err = ErrNilTransform
		return b
	}
	b.transforms = append(b.transforms, t)
	return b
}

func (b *Builder) taken(name string) bool {
	if _, ok := b.attrs[name]; ok {
		return true
	}
	_, ok := b.methods[name]
	return ok
}

// Build validates the declarations, runs the transforms, and freezes the
// result into an immutable Class.
func (b *Builder) Build() (*Class, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.name == "" {
		return nil, ErrEmptyClassName
	}

	m := Members{
		Attrs:   make(map[string]any, len(b.attrs)),
		Methods: make(map[string]Method, len(b.methods)),
	}
	for k, v := range b.attrs {
		m.Attrs[k] = v
	}
	for k, v := range b.methods {
		m.Methods[k] = v
	}

	for _, t := range b.transforms {
		next, err := t(b.name, m)
		if err != nil {
			return nil, TransformError{Class: b.name, Err: err}
		}
		if next.Attrs == nil {
			next.Attrs = make(map[string]any)
		}
		if next.Methods == nil {
			next.Methods = make(map[string]Method)
		}
		m = next
	}

	for name := range m.Methods {
		if _, dup := m.Attrs[name]; dup {
			return nil, DuplicateMemberError{Name: name}
		}
		if m.Methods[name] == nil {
			return nil, ErrNilMethod
		}
	}

	return &Class{name: b.name, attrs: m.Attrs, methods: m.Methods}, nil
}

// MustBuild is Build or panic; for wiring in examples and tests where a
// broken class definition should fail fast.
func (b *Builder) MustBuild() *Class {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// BuildInto builds the class and, on success, registers it by name. This is
// the auto-registration use case: the class becomes discoverable the moment
// it exists.
func (b *Builder) BuildInto(r *Registry) (*Class, error) {
	c, err := b.Build()
	if err != nil {
		return nil, err
	}
	r.Add(c)
	return c, nil
}

// Class is a frozen type descriptor: a name plus the member set that
// survived the transforms. All instances are created through it.
type Class struct {
	name    string
	attrs   map[string]any
	methods map[string]Method
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// HasMember reports whether the class declares the member (attribute or
// method) under exactly that name.
func (c *Class) HasMember(name string) bool {
	if _, ok := c.attrs[name]; ok {
		return true
	}
	_, ok := c.methods[name]
	return ok
}

// New creates an instance. Each instance starts with its own copy of the
// class attributes, so mutating one instance never leaks into another.
func (c *Class) New() *Instance {
	fields := make(map[string]any, len(c.attrs))
	for k, v := range c.attrs {
		fields[k] = v
	}
	return &Instance{class: c, fields: fields}
}

// Instance is one value of a built class.
type Instance struct {
	class  *Class
	fields map[string]any
}

// Class returns the descriptor this instance was created from.
func (i *Instance) Class() *Class { return i.class }

// Get returns the attribute value, or false if the class does not declare
// it.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.fields[name]
	return v, ok
}

// Set assigns an attribute. The class shape is fixed at build time, so
// assigning an undeclared name returns UnknownMemberError.
func (i *Instance) Set(name string, val any) error {
	if _, ok := i.fields[name]; !ok {
		return UnknownMemberError{Class: i.class.name, Member: name}
	}
	i.fields[name] = val
	return nil
}

// Call invokes a class method on this instance. A panic inside the method
// body is converted into an error wrapping ErrMethodPanic.
func (i *Instance) Call(name string, args ...any) (res any, err error) {
	m, ok := i.class.methods[name]
	if !ok {
		return nil, UnknownMemberError{Class: i.class.name, Member: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrMethodPanic, rec)
		}
	}()

	return m(i, args...)
}
