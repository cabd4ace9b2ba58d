package extensions

import "github.com/marcelljawhari/ArgRankLab/af"

// Grounded finds the unique grounded extension: the least fixed point
// of F(S) = { a : every attacker of a is attacked by some s ∈ S }.
type Grounded struct{}

// Name implements Finder.
func (Grounded) Name() string { return "grounded" }

// Extensions implements Finder by iterative accretion: arguments whose
// member attackers are all counter-attacked by the current set join
// it, until a round adds nothing. Unattacked arguments join in the
// first round.
// Complexity: O(rounds · Σ_a deg(a)).
func (Grounded) Extensions(v af.View) ([]*af.ArgSet, error) {
	if v == nil {
		return nil, ErrNilView
	}

	accepted := af.NewArgSet(v.Capacity())
	attacked := af.NewArgSet(v.Capacity()) // everything attacked by accepted
	for {
		changed := false
		for _, a := range v.Arguments() {
			if accepted.Contains(a) {
				continue
			}
			defended := true
			for _, b := range v.Attackers(a) {
				if !attacked.Contains(b) {
					defended = false

					break
				}
			}
			if !defended {
				continue
			}
			accepted.Add(a)
			for _, t := range v.Attackees(a) {
				attacked.Add(t)
			}
			changed = true
		}
		if !changed {
			break
		}
	}

	return []*af.ArgSet{accepted}, nil
}
