package constraints

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// workVars returns the BoolVars for every (shift, needed-skill-slot)
// assignment of employee on team during week/day — i.e. every variable that
// would make the employee "working" that day.
func workVars(u *variables.Universe, week, day, team, employee string, shifts []domain.Shift) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, shift := range shifts {
		for _, sk := range shift.NeededSkills {
			out = append(out, u.MustBoolVar(domain.WorkKey(week, day, shift.Name, team, employee, sk.Label())))
		}
	}
	return out
}

// shiftVars returns the BoolVars for every (team, employee) assigned to the
// given shift (any skill) on week/day across teams.
func shiftVarsAcrossTeams(u *variables.Universe, week, day string, shift domain.Shift, teams []*domain.Team) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, team := range teams {
		for _, e := range team.Employees {
			for _, sk := range shift.NeededSkills {
				out = append(out, u.MustBoolVar(domain.WorkKey(week, day, shift.Name, team.Name, e.Name, sk.Label())))
			}
		}
	}
	return out
}

// slotVars returns the BoolVars for one required-skill slot of a shift
// across every (team, employee) — the coverage set for H1.
func slotVars(u *variables.Universe, week, day, shiftName, skillLabel string, teams []*domain.Team) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, team := range teams {
		for _, e := range team.Employees {
			out = append(out, u.MustBoolVar(domain.WorkKey(week, day, shiftName, team.Name, e.Name, skillLabel)))
		}
	}
	return out
}

// sumExpr sums a slice of BoolVars into a LinearExpr.
func sumExpr(vars []cpmodel.BoolVar) *cpmodel.LinearExpr {
	e := cpmodel.NewLinearExpr()
	for _, v := range vars {
		e.Add(v)
	}
	return e
}

// linearizedShiftPositions returns every (week, day, shift) triple across
// horizon's weeks_plus_one horizon, in enumeration order, together with the
// shift's needed skills — the "linearized sequence of shift positions" H8
// and the transition-based soft rules index into.
type shiftPosition struct {
	Week  string
	Day   string
	Shift domain.Shift
}

func linearizedShiftPositions(weeks []*domain.Week) []shiftPosition {
	var out []shiftPosition
	for _, w := range weeks {
		for _, d := range w.Days {
			for _, sh := range d.Shifts {
				out = append(out, shiftPosition{Week: w.Name, Day: d.Name, Shift: sh})
			}
		}
	}
	return out
}

func (p shiftPosition) vars(u *variables.Universe, team, employee string) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for _, sk := range p.Shift.NeededSkills {
		out = append(out, u.MustBoolVar(domain.WorkKey(p.Week, p.Day, p.Shift.Name, team, employee, sk.Label())))
	}
	return out
}

// linearizedDays returns every (week, day) pair across weeks in order.
type weekDayName struct {
	Week string
	Day  string
}

func linearizedDays(weeks []*domain.Week) []weekDayName {
	var out []weekDayName
	for _, w := range weeks {
		for _, d := range w.Days {
			out = append(out, weekDayName{Week: w.Name, Day: d.Name})
		}
	}
	return out
}
