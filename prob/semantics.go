package prob

import (
	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/extensions"
)

// Grounded ranks by the probability of credulous acceptance under
// grounded semantics.
func Grounded(f *af.AF, opts ...Option) (*Result, error) {
	return Rank(f, extensions.Grounded{}, opts...)
}

// Complete ranks by the probability of credulous acceptance under
// complete semantics.
func Complete(f *af.AF, opts ...Option) (*Result, error) {
	return Rank(f, extensions.Complete{}, opts...)
}

// Preferred ranks by the probability of credulous acceptance under
// preferred semantics.
func Preferred(f *af.AF, opts ...Option) (*Result, error) {
	return Rank(f, extensions.Preferred{}, opts...)
}

// Ideal ranks by the probability of credulous acceptance under ideal
// semantics.
func Ideal(f *af.AF, opts ...Option) (*Result, error) {
	return Rank(f, extensions.Ideal{}, opts...)
}
