package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// AddOneShiftPerDay is H2: at most one (shift, skill) assignment per
// employee per day. Grounded on add_one_employee_only_one_shift_per_day.
func AddOneShiftPerDay(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for _, team := range teams {
		for _, e := range team.Employees {
			for _, w := range horizon.WeeksPlusOne {
				for _, d := range w.Days {
					model.AddAtMostOne(workVars(u, w.Name, d.Name, team.Name, e.Name, d.Shifts)...)
				}
			}
		}
	}
}

// AddWeeklyCap is H5: at most 5 assignments per employee per calendar week.
// Togglable independently of AddSixDayWindowCap per spec §9's Open
// Question. Grounded on add_one_employee_only_works_five_days_a_week.
func AddWeeklyCap(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, cap int64) {
	for _, team := range teams {
		for _, e := range team.Employees {
			for _, w := range horizon.WeeksPlusOne {
				var vars []cpmodel.BoolVar
				for _, d := range w.Days {
					vars = append(vars, workVars(u, w.Name, d.Name, team.Name, e.Name, d.Shifts)...)
				}
				worked := model.NewIntVar(0, int64(len(vars))).WithName(fmt.Sprintf("H5_worked_%s_%s_%s", team.Name, e.Name, w.Name))
				model.AddEquality(worked, sumExpr(vars))
				model.AddLessOrEqual(worked, cpmodel.NewConstant(cap))
			}
		}
	}
}

// AddSlidingWindowCap enforces at most `cap` assignments within every
// window of `windowDays` consecutive days, stepping one day at a time. With
// windowDays=6, cap=5 this is H6; with windowDays=11, cap=10 this is the
// supplemented H6b (SPEC_FULL §3), both grounded on
// add_one_employee_only_works_five_days_in_a_row /
// add_one_employee_works_max_ten_days_in_a_row, which use the identical
// sliding-help-int pattern at different window sizes.
func AddSlidingWindowCap(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, windowDays int, cap int64) {
	days := linearizedDays(horizon.WeeksPlusOne)
	if len(days) < windowDays {
		return
	}
	positionsByDay := make([][]shiftPosition, len(days))
	index := make(map[weekDayName]int, len(days))
	for i, wd := range days {
		index[wd] = i
	}
	for _, p := range linearizedShiftPositions(horizon.WeeksPlusOne) {
		i := index[weekDayName{Week: p.Week, Day: p.Day}]
		positionsByDay[i] = append(positionsByDay[i], p)
	}

	for _, team := range teams {
		for _, e := range team.Employees {
			for start := 0; start+windowDays <= len(days); start++ {
				var vars []cpmodel.BoolVar
				for _, positions := range positionsByDay[start : start+windowDays] {
					for _, p := range positions {
						vars = append(vars, p.vars(u, team.Name, e.Name)...)
					}
				}
				if len(vars) == 0 {
					continue
				}
				window := model.NewIntVar(0, int64(len(vars))).WithName(fmt.Sprintf("slidingwindow_%d_%s_%s_%d", windowDays, team.Name, e.Name, start))
				model.AddEquality(window, sumExpr(vars))
				model.AddLessOrEqual(window, cpmodel.NewConstant(cap))
			}
		}
	}
}
