package constraints

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// AddShiftManagerPresence is H10: every team has at least one shift manager
// with some assignment on every day of the horizon. Grounded on
// add_at_least_one_shift_manager_per_team_per_day.
func AddShiftManagerPresence(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for _, team := range teams {
		managers := team.ShiftManagers()
		for _, w := range horizon.WeeksPlusOne {
			for _, d := range w.Days {
				var vars []cpmodel.BoolVar
				for _, m := range managers {
					vars = append(vars, workVars(u, w.Name, d.Name, team.Name, m.Name, d.Shifts)...)
				}
				if len(vars) == 0 {
					// No shift manager on the team at all is an input error,
					// not a per-build infeasibility; caught earlier by
					// config validation. An empty AddAtLeastOne would be
					// trivially unsatisfiable, so builders must never reach
					// this with an empty manager list.
					continue
				}
				model.AddAtLeastOne(vars...)
			}
		}
	}
}
