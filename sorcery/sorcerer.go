package sorcery

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrLevelTooLow is returned when a sorcerer's level would drop below 1.
	ErrLevelTooLow = errors.New("sorcery: level must be >= 1")

	// ErrNegativeMana is returned when a sorcerer's mana would go negative.
	ErrNegativeMana = errors.New("sorcery: mana cannot be negative")

	// ErrNotEnoughMana is returned by Cast when the spell costs more mana
	// than the sorcerer has.
	ErrNotEnoughMana = errors.New("sorcery: not enough mana")
)

// UnknownSpellError is returned by Cast and Forget for spells the sorcerer
// never learned.
type UnknownSpellError struct {
	Sorcerer string
	Spell    string
}

// Error implements the error interface.
func (e UnknownSpellError) Error() string {
	// Example: sorcery: "Aelar" doesn't know the spell "meteor"
	return "sorcery: " + strconv.Quote(e.Sorcerer) + " doesn't know the spell " + strconv.Quote(e.Spell)
}

// Sorcerer is the demo type. Its fields are unexported on purpose: every
// way the outside world touches it goes through one of the hooks the
// package documents.
type Sorcerer struct {
	name   string
	level  int
	mana   int
	spells map[string]int // spell name -> mana cost
}

// New validates and constructs a Sorcerer. The spells map is copied.
func New(name string, level, mana int, spells map[string]int) (*Sorcerer, error) {
	if level < 1 {
		return nil, ErrLevelTooLow
	}
	if mana < 0 {
		return nil, ErrNegativeMana
	}
	s := &Sorcerer{name: name, level: level, mana: mana, spells: make(map[string]int, len(spells))}
	maps.Copy(s.spells, spells)
	return s, nil
}

// MustNew is New or panic; for examples and tests.
func MustNew(name string, level, mana int, spells map[string]int) *Sorcerer {
	s, err := New(name, level, mana, spells)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the sorcerer's name.
func (s *Sorcerer) Name() string { return s.name }

// Level returns the sorcerer's level.
func (s *Sorcerer) Level() int { return s.level }

// Mana returns the current mana.
func (s *Sorcerer) Mana() int { return s.mana }

// SetLevel validates and assigns the level.
func (s *Sorcerer) SetLevel(level int) error {
	if level < 1 {
		return ErrLevelTooLow
	}
	s.level = level
	return nil
}

// SetMana validates and assigns the mana pool.
func (s *Sorcerer) SetMana(mana int) error {
	if mana < 0 {
		return ErrNegativeMana
	}
	s.mana = mana
	return nil
}

//
// String / representation hooks
//

// String implements fmt.Stringer: the user-friendly form %s and %v print.
func (s *Sorcerer) String() string {
	return fmt.Sprintf("Sorcerer %s (Lv %d, Mana %d, %d spells)",
		s.name, s.level, s.mana, s.SpellCount())
}

// Short is the compact form used by %q formatting.
func (s *Sorcerer) Short() string {
	return fmt.Sprintf("%s (Lv %d)", s.name, s.level)
}

// GoString implements fmt.GoStringer: the unambiguous form %#v prints.
func (s *Sorcerer) GoString() string {
	return fmt.Sprintf("sorcery.Sorcerer{name: %q, level: %d, mana: %d, spells: %v}",
		s.name, s.level, s.mana, slices.Sorted(maps.Keys(s.spells)))
}

// Format implements fmt.Formatter:
//
//	%s, %v   user-friendly form (String)
//	%+v      detail including the spell book
//	%#v      Go-syntax form (GoString)
//	%q       quoted short form
func (s *Sorcerer) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case f.Flag('#'):
			io.WriteString(f, s.GoString())
		case f.Flag('+'):
			fmt.Fprintf(f, "%s, spells: %v", s.String(), slices.Sorted(maps.Keys(s.spells)))
		default:
			io.WriteString(f, s.String())
		}
	case 's':
		io.WriteString(f, s.String())
	case 'q':
		fmt.Fprintf(f, "%q", s.Short())
	default:
		// Unknown verb: follow fmt's convention for bad verbs.
		fmt.Fprintf(f, "%%!%c(sorcery.Sorcerer=%s)", verb, s.name)
	}
}

// MarshalText implements encoding.TextMarshaler: the compact wire form.
func (s *Sorcerer) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "%s|%d|%d", s.name, s.level, s.mana), nil
}

//
// Ordering, equality, identity
//

// Compare orders sorcerers by level, then mana. Use with slices.SortFunc.
func (s *Sorcerer) Compare(other *Sorcerer) int {
	if c := cmp.Compare(s.level, other.level); c != 0 {
		return c
	}
	return cmp.Compare(s.mana, other.mana)
}

// Equal reports identity by name and level, mirroring Key.
func (s *Sorcerer) Equal(other *Sorcerer) bool {
	return other != nil && s.name == other.name && s.level == other.level
}

// Key is a comparable identity usable as a map key or set member.
type Key struct {
	Name  string
	Level int
}

// Key returns the sorcerer's comparable identity.
func (s *Sorcerer) Key() Key { return Key{Name: s.name, Level: s.level} }

//
// Truthiness / length analogs
//

// HasMana reports whether any mana is left.
func (s *Sorcerer) HasMana() bool { return s.mana > 0 }

// SpellCount returns the number of known spells.
func (s *Sorcerer) SpellCount() int { return len(s.spells) }

//
// Container-style spell book access
//

// Knows reports whether the spell is in the book.
func (s *Sorcerer) Knows(spell string) bool {
	_, ok := s.spells[spell]
	return ok
}

// SpellCost returns the spell's mana cost.
func (s *Sorcerer) SpellCost(spell string) (int, bool) {
	cost, ok := s.spells[spell]
	return cost, ok
}

// Learn adds or updates a spell.
func (s *Sorcerer) Learn(spell string, cost int) {
	s.spells[spell] = cost
}

// Forget removes a spell; forgetting an unknown spell is an error.
func (s *Sorcerer) Forget(spell string) error {
	if !s.Knows(spell) {
		return UnknownSpellError{Sorcerer: s.name, Spell: spell}
	}
	delete(s.spells, spell)
	return nil
}

// Spells iterates the spell book as (name, cost) pairs in sorted name
// order. Map iteration order is randomized in Go; sorting here keeps the
// walk deterministic, which the examples and tests rely on.
func (s *Sorcerer) Spells() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, name := range slices.Sorted(maps.Keys(s.spells)) {
			if !yield(name, s.spells[name]) {
				return
			}
		}
	}
}

//
// Callable behavior and arithmetic-style copies
//

// Cast spends the spell's mana cost and narrates the outcome. An empty
// target casts into the air.
func (s *Sorcerer) Cast(spell, target string) (string, error) {
	cost, ok := s.spells[spell]
	if !ok {
		return "", UnknownSpellError{Sorcerer: s.name, Spell: spell}
	}
	if s.mana < cost {
		return "", fmt.Errorf("%w: %q costs %d, %s has %d", ErrNotEnoughMana, spell, cost, s.name, s.mana)
	}

	s.mana -= cost
	if target == "" {
		return fmt.Sprintf("%s casts %q (cost %d MP). Remaining mana: %d.",
			s.name, spell, cost, s.mana), nil
	}
	return fmt.Sprintf("%s casts %q on %s! (cost %d MP, remaining mana: %d)",
		s.name, spell, target, cost, s.mana), nil
}

// WithMana returns a copy with mana adjusted by delta, clamped at zero.
// The original is untouched; the spell book is copied.
func (s *Sorcerer) WithMana(delta int) *Sorcerer {
	cp := &Sorcerer{
		name:   s.name,
		level:  s.level,
		mana:   max(0, s.mana+delta),
		spells: make(map[string]int, len(s.spells)),
	}
	maps.Copy(cp.spells, s.spells)
	return cp
}
