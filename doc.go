// Package idioms is a small collection of self-contained examples of Go
// language mechanics, one package per topic:
//
//   - wrap: function-wrapping combinators (logging, timing, retries) that
//     leave the wrapped callable's result and error untouched
//   - lazyseq: lazy, demand-driven sequences built on iter.Seq / iter.Pull
//   - typebuild: construction-time customization of a type descriptor via a
//     builder and transform hooks (the static-language answer to metaclasses)
//   - scope: bracketed resource acquisition with exactly-once release on
//     every exit path
//   - dispatch: selecting an implementation by the runtime type of the first
//     argument, with a fallback for everything else
//   - sorcery: one toy type plugging into fmt, ordering, iteration, and text
//     marshalling
//   - gotchas: slice aliasing and shared-accumulator traps, with the fixes
//
// The packages do not depend on each other; each is meant to be read (and
// run) in isolation. Every topic has a runnable demo under examples/<topic>
// that narrates the wiring the way you would actually use it.
package idioms
