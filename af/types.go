// Package af: sentinel errors, the Argument identifier type and the
// bitset-backed ArgSet.
package af

import (
	"errors"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for framework construction and parsing.
var (
	// ErrBadArgumentCount indicates a non-positive argument count.
	ErrBadArgumentCount = errors.New("af: argument count must be positive")

	// ErrUnknownArgument indicates an attack endpoint outside 1…N.
	ErrUnknownArgument = errors.New("af: unknown argument")

	// ErrParse indicates an unreadable or header-less .af file.
	ErrParse = errors.New("af: malformed framework file")

	// ErrNilFramework indicates a nil *AF was passed to a constructor.
	ErrNilFramework = errors.New("af: framework is nil")
)

// Argument identifies an argument within its framework.
// Arguments are 1-indexed; identity is plain integer equality.
type Argument int

// Attack is one element of the attack relation: From attacks To.
type Attack struct {
	From Argument
	To   Argument
}

// ArgSet is a set of arguments backed by a bitset. The zero value is
// not usable; construct with NewArgSet.
type ArgSet struct {
	bits *bitset.BitSet
}

// NewArgSet returns an empty set able to hold arguments 1…capacity.
func NewArgSet(capacity int) *ArgSet {
	return &ArgSet{bits: bitset.New(uint(capacity + 1))}
}

// Add inserts a into the set.
func (s *ArgSet) Add(a Argument) { s.bits.Set(uint(a)) }

// Remove deletes a from the set.
func (s *ArgSet) Remove(a Argument) { s.bits.Clear(uint(a)) }

// Contains reports whether a is a member.
func (s *ArgSet) Contains(a Argument) bool { return s.bits.Test(uint(a)) }

// Len returns the number of members.
func (s *ArgSet) Len() int { return int(s.bits.Count()) }

// Empty reports whether the set has no members.
func (s *ArgSet) Empty() bool { return s.bits.None() }

// Members returns the arguments in ascending order.
func (s *ArgSet) Members() []Argument {
	out := make([]Argument, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Argument(i))
	}

	return out
}

// Clone returns an independent copy of the set.
func (s *ArgSet) Clone() *ArgSet { return &ArgSet{bits: s.bits.Clone()} }

// Union returns a new set holding every member of s and t.
func (s *ArgSet) Union(t *ArgSet) *ArgSet { return &ArgSet{bits: s.bits.Union(t.bits)} }

// Difference returns a new set holding the members of s not in t.
func (s *ArgSet) Difference(t *ArgSet) *ArgSet { return &ArgSet{bits: s.bits.Difference(t.bits)} }

// SubsetOf reports whether every member of s is also in t.
func (s *ArgSet) SubsetOf(t *ArgSet) bool { return t.bits.IsSuperSet(s.bits) }

// ProperSubsetOf reports whether s ⊂ t.
func (s *ArgSet) ProperSubsetOf(t *ArgSet) bool {
	return t.bits.IsSuperSet(s.bits) && !s.bits.Equal(t.bits)
}

// Equal reports whether s and t hold exactly the same members.
func (s *ArgSet) Equal(t *ArgSet) bool { return s.bits.Equal(t.bits) }

// SetOf builds an ArgSet holding the given arguments.
func SetOf(capacity int, args ...Argument) *ArgSet {
	s := NewArgSet(capacity)
	for _, a := range args {
		s.Add(a)
	}

	return s
}

// sortArguments sorts a slice of arguments ascending, in place.
func sortArguments(args []Argument) {
	sort.Slice(args, func(i, j int) bool { return args[i] < args[j] })
}
