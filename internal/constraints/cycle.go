package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// ShiftCycle is the fixed rotation order shifts must follow week over week
// (spec glossary: "the fixed rotation M -> A -> N -> M applied per team
// across weeks").
type ShiftCycle []string

// Next returns the cyclic successor of name.
func (c ShiftCycle) Next(name string) string {
	for i, n := range c {
		if n == name {
			return c[(i+1)%len(c)]
		}
	}
	return name
}

// AddShiftCycle is H9: if any employee on a team works shift X somewhere in
// week k, every employee on that team works only cycle.Next(X) in week k+1.
// This is why horizon carries a trailing WeeksPlusOne week — it gives the
// last visible week a successor to constrain against (spec §4.2, §9).
// Grounded on add_shift_cycle.
func AddShiftCycle(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, cycle ShiftCycle) {
	weeks := horizon.WeeksPlusOne
	for _, team := range teams {
		for i := 0; i < len(weeks)-1; i++ {
			week, next := weeks[i], weeks[i+1]
			for _, shiftName := range cycle {
				vars := shiftedAcrossTeamWeek(u, week, team, shiftName)
				active := Indicator(model, fmt.Sprintf("H9_%s_%s_%s", team.Name, week.Name, shiftName), sumExpr(vars), 1, int64(len(vars)))

				successor := cycle.Next(shiftName)
				var otherVars []cpmodel.BoolVar
				for _, d := range next.Days {
					for _, sh := range d.Shifts {
						if sh.Name == successor {
							continue
						}
						otherVars = append(otherVars, shiftVarsAcrossTeams(u, next.Name, d.Name, sh, []*domain.Team{team})...)
					}
				}
				if len(otherVars) == 0 {
					continue
				}
				model.AddEquality(sumExpr(otherVars), cpmodel.NewConstant(0)).OnlyEnforceIf(active)
			}
		}
	}
}

func shiftedAcrossTeamWeek(u *variables.Universe, week *domain.Week, team *domain.Team, shiftName string) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, d := range week.Days {
		for _, sh := range d.Shifts {
			if sh.Name != shiftName {
				continue
			}
			out = append(out, shiftVarsAcrossTeams(u, week.Name, d.Name, sh, []*domain.Team{team})...)
		}
	}
	return out
}
