package constraints

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// AddSeedPins is H14: every key the seed loader produced is pinned to 1.
// Keys outside the universe (e.g. a seed workbook built for a different
// horizon shape) are reported back rather than silently ignored, so a
// caller can decide whether that mismatch is fatal. Grounded on
// Excel_interface.py's read-back of a prior solution into fixed
// assignments, generalized from its one-shot script into a reusable rule.
func AddSeedPins(model *cpmodel.Builder, u *variables.Universe, keys []domain.Key) (unknown []domain.Key) {
	for _, k := range keys {
		v, ok := u.BoolVar(k)
		if !ok {
			unknown = append(unknown, k)
			continue
		}
		model.AddEquality(v, cpmodel.NewConstant(1))
	}
	return unknown
}
