package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// EmployeeMetric is one soft rule's per-employee contribution: Linear is the
// reported `c*m_e` value, Squared is `(c*m_e)^2`, the term actually summed
// into the objective (spec §4.3).
type EmployeeMetric struct {
	Team     string
	Employee string
	Linear   cpmodel.IntVar
	Squared  cpmodel.IntVar
}

// squaredTerms extracts every metric's Squared var, for summing into an
// objective.
func squaredTerms(metrics []EmployeeMetric) []cpmodel.IntVar {
	out := make([]cpmodel.IntVar, len(metrics))
	for i, m := range metrics {
		out[i] = m.Squared
	}
	return out
}

// AddTransitionMetric is S1 (filter nil) or S2 (filter restricted to the
// night shift): metric = count of daily-presence transitions, including the
// leading virtual one. Grounded on
// add_an_employee_should_not_often_change_his_shift /
// add_an_employee_should_not_often_change_from_and_to_night_shift.
func AddTransitionMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64, filter func(domain.Shift) bool, namePrefix string) []EmployeeMetric {
	weeks := horizon.WeeksPlusOne
	var metrics []EmployeeMetric
	for _, team := range teams {
		for _, e := range team.Employees {
			prefix := fmt.Sprintf("%s_%s_%s", namePrefix, team.Name, e.Name)
			daily := DailyIndicators(model, u, weeks, team.Name, e.Name, prefix, filter)
			transitions := TransitionCount(model, daily, prefix)
			linear, squared := SquaredCost(model, prefix, sumExpr(transitions), weight, int64(len(transitions)))
			metrics = append(metrics, EmployeeMetric{Team: team.Name, Employee: e.Name, Linear: linear, Squared: squared})
		}
	}
	return metrics
}

// AddCountMetric is S3 (filter restricted to the night shift) or S4 (filter
// nil): metric = raw count of matching assignments over the horizon. Since
// H2 caps each day to at most one assignment, this is equivalent to summing
// the filtered work variables directly, with no reified daily indicator
// needed. Grounded on add_every_employee_has_equal_night_shifts /
// add_every_employee_has_equal_shifts.
func AddCountMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64, filter func(domain.Shift) bool, namePrefix string) []EmployeeMetric {
	weeks := horizon.WeeksPlusOne
	var metrics []EmployeeMetric
	for _, team := range teams {
		for _, e := range team.Employees {
			var vars []cpmodel.BoolVar
			for _, w := range weeks {
				for _, d := range w.Days {
					var shifts []domain.Shift
					for _, sh := range d.Shifts {
						if filter == nil || filter(sh) {
							shifts = append(shifts, sh)
						}
					}
					vars = append(vars, workVars(u, w.Name, d.Name, team.Name, e.Name, shifts)...)
				}
			}
			name := fmt.Sprintf("%s_%s_%s", namePrefix, team.Name, e.Name)
			linear, squared := SquaredCost(model, name, sumExpr(vars), weight, int64(len(vars)))
			metrics = append(metrics, EmployeeMetric{Team: team.Name, Employee: e.Name, Linear: linear, Squared: squared})
		}
	}
	return metrics
}

// AddOvertimeMetric is S5: for every 7-day window stepping by 2 days,
// overtime = max(0, assignments_in_window - 5), metric = sum of overtime
// across windows. Grounded on
// add_an_employee_should_not_work_six_or_seven_days_in_a_row's sliding-
// window-of-7-stepping-by-2 pattern, generalized from a flat Boolean
// penalty into the magnitude-aware max(0, w-5) the spec calls for.
func AddOvertimeMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64) []EmployeeMetric {
	return addOvertimeWindowMetric(model, u, horizon, teams, weight, 7, 2, 5, "S5")
}

// AddTenDayOvertimeMetric is S5b (original_source/ supplement to H6b): the
// same magnitude-aware overtime penalty as S5, but over an 11-day window
// stepping by 2 capped at 10, matching H6b's ten-day span.
func AddTenDayOvertimeMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64) []EmployeeMetric {
	return addOvertimeWindowMetric(model, u, horizon, teams, weight, 11, 2, 10, "S5b")
}

func addOvertimeWindowMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64, windowDays, step, threshold int, namePrefix string) []EmployeeMetric {
	days := linearizedDays(horizon.WeeksPlusOne)
	positionsByDay := make([][]shiftPosition, len(days))
	index := make(map[weekDayName]int, len(days))
	for i, wd := range days {
		index[wd] = i
	}
	for _, p := range linearizedShiftPositions(horizon.WeeksPlusOne) {
		i := index[weekDayName{Week: p.Week, Day: p.Day}]
		positionsByDay[i] = append(positionsByDay[i], p)
	}

	var metrics []EmployeeMetric
	for _, team := range teams {
		for _, e := range team.Employees {
			var overtimeVars []cpmodel.IntVar
			windowCount := 0
			for start := 0; start+windowDays <= len(days); start += step {
				windowCount++
				var vars []cpmodel.BoolVar
				for _, positions := range positionsByDay[start : start+windowDays] {
					for _, p := range positions {
						vars = append(vars, p.vars(u, team.Name, e.Name)...)
					}
				}
				name := fmt.Sprintf("%s_%s_%s_%d", namePrefix, team.Name, e.Name, start)
				diff := model.NewIntVar(int64(-threshold), int64(windowDays-threshold)).WithName(name + "_diff")
				model.AddEquality(diff, cpmodel.NewLinearExpr().Add(sumExpr(vars)).AddConstant(int64(-threshold)))
				overtime := model.NewIntVar(0, int64(windowDays-threshold)).WithName(name + "_overtime")
				model.AddMaxEquality(overtime, diff, cpmodel.NewConstant(0))
				overtimeVars = append(overtimeVars, overtime)
			}
			total := cpmodel.NewLinearExpr()
			for _, v := range overtimeVars {
				total.Add(v)
			}
			name := fmt.Sprintf("%s_%s_%s", namePrefix, team.Name, e.Name)
			linear, squared := SquaredCost(model, name, total, weight, int64(windowCount*(windowDays-threshold)))
			metrics = append(metrics, EmployeeMetric{Team: team.Name, Employee: e.Name, Linear: linear, Squared: squared})
		}
	}
	return metrics
}

// AddHeadcountMetric is S6: for every virtual (FixedSkills=false) employee,
// needed_e indicates whether they are used at all over the horizon.
// Optional: only meaningful when a deployment has virtual employees.
// Grounded on add_an_employee_should_work_as_few_employees_as_possible.
func AddHeadcountMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, weight int64) []EmployeeMetric {
	var metrics []EmployeeMetric
	for _, team := range teams {
		for _, e := range team.Employees {
			if e.FixedSkills {
				continue
			}
			var vars []cpmodel.BoolVar
			for _, w := range horizon.WeeksPlusOne {
				for _, d := range w.Days {
					vars = append(vars, workVars(u, w.Name, d.Name, team.Name, e.Name, d.Shifts)...)
				}
			}
			name := fmt.Sprintf("S6_%s_%s", team.Name, e.Name)
			needed := Indicator(model, name+"_needed", sumExpr(vars), 1, int64(len(vars)))
			linear, squared := SquaredCost(model, name, cpmodel.NewLinearExpr().Add(needed), weight, 1)
			metrics = append(metrics, EmployeeMetric{Team: team.Name, Employee: e.Name, Linear: linear, Squared: squared})
		}
	}
	return metrics
}

// AddSkillFootprintMetric is S7: metric per employee = number of distinct
// skills they ever use. Fixed-skill employees are pinned to their declared
// skill count (they carry the certification whether or not it is
// exercised); virtual employees accumulate has_skill_e,k reactively from
// assignments. Optional. Grounded on
// add_an_employee_should_only_use_as_few_jobs_as_possible.
func AddSkillFootprintMetric(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, catalog *domain.Catalog, weight int64) []EmployeeMetric {
	skills := catalog.Skills()
	var metrics []EmployeeMetric
	for _, team := range teams {
		for _, e := range team.Employees {
			var hasSkillVars []cpmodel.BoolVar
			for _, sk := range skills {
				name := fmt.Sprintf("S7_%s_%s_%s", team.Name, e.Name, sk.Label())
				if e.FixedSkills {
					if !e.HasSkill(sk) {
						continue
					}
					v := model.NewBoolVar().WithName(name)
					model.AddEquality(v, cpmodel.NewConstant(1))
					hasSkillVars = append(hasSkillVars, v)
					continue
				}
				var vars []cpmodel.BoolVar
				for _, w := range horizon.WeeksPlusOne {
					for _, d := range w.Days {
						for _, sh := range d.Shifts {
							for _, need := range sh.NeededSkills {
								if need != sk {
									continue
								}
								vars = append(vars, u.MustBoolVar(domain.WorkKey(w.Name, d.Name, sh.Name, team.Name, e.Name, sk.Label())))
							}
						}
					}
				}
				if len(vars) == 0 {
					continue
				}
				hasSkillVars = append(hasSkillVars, Indicator(model, name, sumExpr(vars), 1, int64(len(vars))))
			}
			name := fmt.Sprintf("S7_%s_%s", team.Name, e.Name)
			linear, squared := SquaredCost(model, name, sumExpr(hasSkillVars), weight, int64(len(skills)))
			metrics = append(metrics, EmployeeMetric{Team: team.Name, Employee: e.Name, Linear: linear, Squared: squared})
		}
	}
	return metrics
}
