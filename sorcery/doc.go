// Package sorcery shows how one ordinary Go type plugs into the standard
// library's hooks — the static cousin of a dynamic language's special
// methods.
//
// The Sorcerer type implements:
//
//   - fmt.Stringer and fmt.GoStringer: %s / %v and %#v output
//   - fmt.Formatter: %+v (detail with spells) and %q (quoted short form)
//   - encoding.TextMarshaler: a compact "name|level|mana" wire form
//   - ordering via Compare, for slices.SortFunc and friends
//   - map-key identity via a small comparable Key struct
//   - container-style access to its spell book (Learn/Forget/Knows)
//   - deterministic iteration via iter.Seq2 (spell names sorted)
//   - "callable" behavior: Cast spends mana and narrates the result
//
// None of this is magic — every hook is a plain method the standard library
// looks for. The point of the example is seeing them all on one type.
package sorcery
