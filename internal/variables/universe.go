// Package variables builds the Boolean decision-variable universe described
// in spec §4.1: one cpmodel.BoolVar per (week, day, shift, team, employee,
// skill) tuple in the weeks_plus_one horizon, plus one vac/ill pair per
// (week, day, team, employee). Enumeration order is fixed so that two builds
// over equal inputs produce identical variable creation order, which is what
// makes seed loading and result diffs reproducible (spec §4.1).
package variables

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
)

// Universe is the full set of decision variables keyed by their canonical
// domain.Key, plus the ordered key sequence they were created in.
type Universe struct {
	vars  map[domain.Key]cpmodel.BoolVar
	order []domain.Key
}

// BoolVar returns the variable for key and whether it exists in the
// universe.
func (u *Universe) BoolVar(key domain.Key) (cpmodel.BoolVar, bool) {
	v, ok := u.vars[key]
	return v, ok
}

// MustBoolVar is BoolVar but panics on a missing key; constraint builders
// use it once they've established a key must be present (e.g. it was just
// enumerated from the same horizon).
func (u *Universe) MustBoolVar(key domain.Key) cpmodel.BoolVar {
	v, ok := u.vars[key]
	if !ok {
		panic(fmt.Sprintf("variables: no variable for key %s", key))
	}
	return v
}

// Keys returns the full enumeration order. Callers must not mutate it.
func (u *Universe) Keys() []domain.Key {
	return u.order
}

// Len returns the number of decision variables in the universe.
func (u *Universe) Len() int {
	return len(u.order)
}

// Build enumerates, in the fixed order teams -> employees -> weeks -> days ->
// shifts -> needed-skill-slots, one BoolVar per tuple over horizon's
// weeks_plus_one weeks, plus one vac/ill BoolVar per (week, day, team,
// employee). It is Component C of the system.
func Build(model *cpmodel.Builder, horizon *domain.PlanningHorizon, teams []*domain.Team) *Universe {
	u := &Universe{vars: make(map[domain.Key]cpmodel.BoolVar)}

	for _, team := range teams {
		for _, employee := range team.Employees {
			for _, week := range horizon.WeeksPlusOne {
				for _, day := range week.Days {
					for _, shift := range day.Shifts {
						for _, skill := range shift.NeededSkills {
							key := domain.WorkKey(week.Name, day.Name, shift.Name, team.Name, employee.Name, skill.Label())
							u.add(model, key)
						}
					}
					u.add(model, domain.VacationKey(week.Name, day.Name, team.Name, employee.Name))
					u.add(model, domain.IllnessKey(week.Name, day.Name, team.Name, employee.Name))
				}
			}
		}
	}

	return u
}

func (u *Universe) add(model *cpmodel.Builder, key domain.Key) {
	if _, exists := u.vars[key]; exists {
		// The enumeration is injective by construction (spec §3); a repeat
		// would mean two distinct needed-skill slots rendered to the same
		// key, which AddMultiplicationEquality-based costing later on
		// silently double-counts. Fail loudly instead.
		panic(fmt.Sprintf("variables: duplicate key %s during enumeration", key))
	}
	bv := model.NewBoolVar().WithName(key.String())
	u.vars[key] = bv
	u.order = append(u.order, key)
}
