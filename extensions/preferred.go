package extensions

import "github.com/marcelljawhari/ArgRankLab/af"

// Preferred finds the ⊂-maximal complete extensions.
type Preferred struct{}

// Name implements Finder.
func (Preferred) Name() string { return "preferred" }

// Extensions implements Finder by enumerating the complete extensions
// and keeping those not properly contained in another.
func (Preferred) Extensions(v af.View) ([]*af.ArgSet, error) {
	complete, err := (Complete{}).Extensions(v)
	if err != nil {
		return nil, err
	}

	var out []*af.ArgSet
	for _, candidate := range complete {
		maximal := true
		for _, other := range complete {
			if candidate.ProperSubsetOf(other) {
				maximal = false

				break
			}
		}
		if maximal {
			out = append(out, candidate)
		}
	}

	return out, nil
}
