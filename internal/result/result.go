// Package result is Component G: it projects a solved variable universe down
// to the assignments that belong in a reported schedule (spec §4.5).
package result

import (
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// Schedule is the set of decision keys assigned true, restricted to the
// visible horizon.
type Schedule struct {
	Keys      map[domain.Key]bool
	Objective float64
}

// Project reads the 0/1 value of every key in the universe from response and
// keeps only those assigned true whose (week, day) lies within horizon's
// visible weeks, stripping the weeks_plus_one tail that exists solely for H9
// (spec §4.5, §9 "shift-cycle coupling week").
func Project(response *cmpb.CpSolverResponse, u *variables.Universe, horizon *domain.PlanningHorizon) *Schedule {
	visible := make(map[string]bool, len(horizon.Visible))
	for _, w := range horizon.Visible {
		visible[w.Name] = true
	}

	keys := make(map[domain.Key]bool)
	for _, k := range u.Keys() {
		if !visible[k.Week] {
			continue
		}
		v := u.MustBoolVar(k)
		if cpmodel.SolutionBooleanValue(response, v) {
			keys[k] = true
		}
	}

	return &Schedule{Keys: keys, Objective: response.GetObjectiveValue()}
}
