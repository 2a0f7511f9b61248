package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// DailyIndicators builds one reified "works" Boolean per day in weeks, for
// one (team, employee), where each day's possible-assignment set is
// filtered by filter (pass nil to include every shift). Shared by H11, S1,
// and S2, all of which need the same "is this employee doing something on
// this day" Boolean.
func DailyIndicators(model *cpmodel.Builder, u *variables.Universe, weeks []*domain.Week, team, employee string, namePrefix string, filter func(domain.Shift) bool) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, w := range weeks {
		for _, d := range w.Days {
			var shifts []domain.Shift
			for _, sh := range d.Shifts {
				if filter == nil || filter(sh) {
					shifts = append(shifts, sh)
				}
			}
			vars := workVars(u, w.Name, d.Name, team, employee, shifts)
			name := fmt.Sprintf("%s_%s_%s_%s_%s", namePrefix, team, employee, w.Name, d.Name)
			ind := Indicator(model, name, sumExpr(vars), 1, int64(len(vars)))
			out = append(out, ind)
		}
	}
	return out
}

// TransitionCount builds the transition Booleans between consecutive
// entries of daily (day i vs day i+1), plus a leading virtual transition
// equal to daily[0] (spec §4.3 S1/S2: "so starting in a block is not
// free"). Returns the full transition list, ready to sum for a metric.
func TransitionCount(model *cpmodel.Builder, daily []cpmodel.BoolVar, namePrefix string) []cpmodel.BoolVar {
	if len(daily) == 0 {
		return nil
	}
	transitions := make([]cpmodel.BoolVar, 0, len(daily))
	transitions = append(transitions, daily[0])
	for i := 0; i < len(daily)-1; i++ {
		t := model.NewBoolVar().WithName(fmt.Sprintf("%s_transition_%d", namePrefix, i))
		model.AddNotEqual(daily[i], daily[i+1]).OnlyEnforceIf(t)
		model.AddEquality(daily[i], daily[i+1]).OnlyEnforceIf(t.Not())
		transitions = append(transitions, t)
	}
	return transitions
}

// AddNightContinuity is H11: at most one contiguous block of night-shift
// days per (team, employee) over the horizon, enforced as "at most 2
// transitions including the leading virtual one". There is no direct
// analogue in rule_builder.py (the original only penalizes fragmentation
// softly, see S2); this hard cap is spec.md's own addition, built with the
// same transition machinery S2 uses.
func AddNightContinuity(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, nightShiftName string) {
	isNight := func(sh domain.Shift) bool { return sh.Name == nightShiftName }
	for _, team := range teams {
		for _, e := range team.Employees {
			daily := DailyIndicators(model, u, horizon.WeeksPlusOne, team.Name, e.Name, "H11_night", isNight)
			transitions := TransitionCount(model, daily, fmt.Sprintf("H11_%s_%s", team.Name, e.Name))
			model.AddLessOrEqual(sumExpr(transitions), cpmodel.NewConstant(2))
		}
	}
}
