package extensions

import (
	"errors"

	"github.com/marcelljawhari/ArgRankLab/af"
)

// ErrNilView is returned when a nil view is passed to a finder.
var ErrNilView = errors.New("extensions: view is nil")

// Finder computes all extensions of a framework view under one
// semantics. Implementations are stateless values safe for concurrent
// use; the probabilistic dispatcher is generic over this capability.
type Finder interface {
	// Name returns the semantics name, lower-case.
	Name() string

	// Extensions returns every extension of v. The empty view yields
	// a single empty extension.
	Extensions(v af.View) ([]*af.ArgSet, error)
}

// ConflictFree reports whether no member of set attacks another
// member (or itself) within v.
func ConflictFree(v af.View, set *af.ArgSet) bool {
	for _, a := range set.Members() {
		for _, b := range v.Attackees(a) {
			if set.Contains(b) {
				return false
			}
		}
	}

	return true
}

// Defends reports whether set defends a within v: every member
// attacker of a is attacked by some member of set.
func Defends(v af.View, set *af.ArgSet, a af.Argument) bool {
	for _, attacker := range v.Attackers(a) {
		defended := false
		for _, d := range set.Members() {
			if v.HasAttack(d, attacker) {
				defended = true

				break
			}
		}
		if !defended {
			return false
		}
	}

	return true
}

// Admissible reports whether set is conflict-free and defends all of
// its members within v.
func Admissible(v af.View, set *af.ArgSet) bool {
	if !ConflictFree(v, set) {
		return false
	}
	for _, a := range set.Members() {
		if !Defends(v, set, a) {
			return false
		}
	}

	return true
}

// AttackedBy returns the members of v attacked by some member of set.
func AttackedBy(v af.View, set *af.ArgSet) *af.ArgSet {
	out := af.NewArgSet(v.Capacity())
	for _, a := range set.Members() {
		for _, b := range v.Attackees(a) {
			out.Add(b)
		}
	}

	return out
}
