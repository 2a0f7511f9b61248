package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// AddSingleShiftKindPerWeek is H7: within one (team, employee, week), every
// assignment must be to the same shift name. Grounded on
// add_one_employee_works_the_same_shift_a_week, but built with the
// Indicator combinator instead of the original's nested "help_var per
// (shift1, shift2) pair" loop — equivalent semantics, half the constraints.
func AddSingleShiftKindPerWeek(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for _, team := range teams {
		for _, e := range team.Employees {
			for _, w := range horizon.WeeksPlusOne {
				byShiftName := make(map[string][]cpmodel.BoolVar)
				var order []string
				for _, d := range w.Days {
					for _, sh := range d.Shifts {
						if _, seen := byShiftName[sh.Name]; !seen {
							order = append(order, sh.Name)
						}
						byShiftName[sh.Name] = append(byShiftName[sh.Name], workVars(u, w.Name, d.Name, team.Name, e.Name, []domain.Shift{sh})...)
					}
				}
				if len(order) < 2 {
					continue
				}
				indicators := make(map[string]cpmodel.BoolVar, len(order))
				for _, name := range order {
					vars := byShiftName[name]
					ind := Indicator(model, fmt.Sprintf("H7_%s_%s_%s_%s", team.Name, e.Name, w.Name, name), sumExpr(vars), 1, int64(len(vars)))
					indicators[name] = ind
				}
				for _, x := range order {
					for _, y := range order {
						if x == y {
							continue
						}
						model.AddBoolAnd(negateAll(byShiftName[y])...).OnlyEnforceIf(indicators[x])
					}
				}
			}
		}
	}
}

func negateAll(vars []cpmodel.BoolVar) []cpmodel.BoolVar {
	out := make([]cpmodel.BoolVar, len(vars))
	for i, v := range vars {
		out[i] = v.Not()
	}
	return out
}

// AddTwoShiftRest is H8: for every pair of shift positions (i, j) with
// i < j <= i+2 in the strict linearized (week, day, shift) sequence over the
// weeks_plus_one horizon, an employee assigned at i cannot also be assigned
// at j. Unlike the original's add_every_employee_have_two_shift_pause, which
// indexes `j % len(keys)` and therefore wraps the last shift of the horizon
// back onto the first, this implementation stops strictly at the horizon
// boundary, per spec §9's Open Question resolution.
func AddTwoShiftRest(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	positions := linearizedShiftPositions(horizon.WeeksPlusOne)
	for _, team := range teams {
		for _, e := range team.Employees {
			for i := 0; i < len(positions); i++ {
				varsI := positions[i].vars(u, team.Name, e.Name)
				for j := i + 1; j <= i+2 && j < len(positions); j++ {
					varsJ := positions[j].vars(u, team.Name, e.Name)
					for _, vi := range varsI {
						for _, vj := range varsJ {
							model.AddBoolOr(vi.Not(), vj.Not())
						}
					}
				}
			}
		}
	}
}
