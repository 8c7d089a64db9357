// Package typebuild customizes how a "class" is constructed, at the moment
// it is constructed.
//
// Go fixes the shape of a type at compile time, so the dynamic-language
// trick of hooking class creation is re-expressed here as a builder that
// assembles a type descriptor (Class) at initialization time. Transform
// hooks run once, while the descriptor is being built, and may inspect,
// rename, or inject members:
//
//	class, err := typebuild.New("Person").
//	    Attr("age", 25).
//	    Attr("name", "John Doe").
//	    Method("greet", greet).
//	    Apply(typebuild.UpperAttrs).
//	    Build()
//
// Because the hook runs at class-construction time and the built Class is
// immutable, every Instance created from it afterwards exhibits the
// transformed members; classes built without the hook are unaffected.
//
// Design goals:
//   - Construction-time only: transforms never run per instance.
//   - Frozen descriptors: Build validates, then the Class never changes.
//   - Typed errors: wiring mistakes (duplicate members, nil hooks, unknown
//     members) surface as dedicated error types you can assert in tests.
//
// A Registry is included for the auto-registration use case: building into
// a registry makes the class discoverable by name.
package typebuild
