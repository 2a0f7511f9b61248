// Package objective is Component E: it wires the soft-rule metrics built in
// internal/constraints into one of the two aggregation profiles spec §4.4
// names, and sets the solver's minimize() target.
package objective

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/gridshift/roster/internal/constraints"
	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// Profile selects which soft rules contribute to the objective (spec §4.4).
type Profile string

const (
	// ProfileRoster is S1+S2+S3+S4+S5+S5b: the day-to-day scheduling
	// objective.
	ProfileRoster Profile = "roster"
	// ProfileStaffingAnalysis is S6+S7: used to discover minimum headcount
	// and skill catalog before pinning a roster.
	ProfileStaffingAnalysis Profile = "staffing_analysis"
)

// Weights carries the per-rule linear weights named in spec §4.3's defaults
// table. A deployment may override any of them.
type Weights struct {
	Transitions      int64 // S1
	NightTransitions int64 // S2
	NightBalance     int64 // S3
	ShiftBalance     int64 // S4
	Overtime         int64 // S5
	OvertimeTenDay   int64 // S5b
	Headcount        int64 // S6
	SkillFootprint   int64 // S7
}

// DefaultWeights returns spec §4.3's default weight table: S1 c=3, S2
// c=7*4*2=56, S3 c=10, S4 c=10, S5 c=10000, S6 c=100, S7 c=1.
func DefaultWeights() Weights {
	return Weights{
		Transitions:      3,
		NightTransitions: 7 * 4 * 2,
		NightBalance:     10,
		ShiftBalance:     10,
		Overtime:         10000,
		OvertimeTenDay:   10000,
		Headcount:        100,
		SkillFootprint:   1,
	}
}

// RuleBreakdown names one contributing soft rule and its per-employee
// metrics, for the reporter's cost breakdown.
type RuleBreakdown struct {
	Rule    string
	Metrics []constraints.EmployeeMetric
}

// Result is what Build returns: the objective has already been set on
// model; Breakdown is retained so the reporter and console output (spec §6)
// can render a per-employee, per-rule cost table.
type Result struct {
	Profile   Profile
	Breakdown []RuleBreakdown
}

// Build constructs the soft-rule metrics selected by profile, sums their
// squared terms into model's objective, and calls model.Minimize.
func Build(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team, catalog *domain.Catalog, nightShiftName string, profile Profile, w Weights) (*Result, error) {
	isNight := func(sh domain.Shift) bool { return sh.Name == nightShiftName }

	var breakdown []RuleBreakdown
	switch profile {
	case ProfileRoster:
		breakdown = append(breakdown,
			RuleBreakdown{Rule: "S1_transitions", Metrics: constraints.AddTransitionMetric(model, u, horizon, teams, w.Transitions, nil, "S1")},
			RuleBreakdown{Rule: "S2_night_transitions", Metrics: constraints.AddTransitionMetric(model, u, horizon, teams, w.NightTransitions, isNight, "S2")},
			RuleBreakdown{Rule: "S3_night_balance", Metrics: constraints.AddCountMetric(model, u, horizon, teams, w.NightBalance, isNight, "S3")},
			RuleBreakdown{Rule: "S4_shift_balance", Metrics: constraints.AddCountMetric(model, u, horizon, teams, w.ShiftBalance, nil, "S4")},
			RuleBreakdown{Rule: "S5_overtime", Metrics: constraints.AddOvertimeMetric(model, u, horizon, teams, w.Overtime)},
			RuleBreakdown{Rule: "S5b_ten_day_overtime", Metrics: constraints.AddTenDayOvertimeMetric(model, u, horizon, teams, w.OvertimeTenDay)},
		)
	case ProfileStaffingAnalysis:
		breakdown = append(breakdown,
			RuleBreakdown{Rule: "S6_headcount", Metrics: constraints.AddHeadcountMetric(model, u, horizon, teams, w.Headcount)},
			RuleBreakdown{Rule: "S7_skill_footprint", Metrics: constraints.AddSkillFootprintMetric(model, u, horizon, teams, catalog, w.SkillFootprint)},
		)
	default:
		return nil, fmt.Errorf("objective: unknown profile %q", profile)
	}

	total := cpmodel.NewLinearExpr()
	for _, rb := range breakdown {
		for _, m := range rb.Metrics {
			total.Add(m.Squared)
		}
	}
	model.Minimize(total)

	return &Result{Profile: profile, Breakdown: breakdown}, nil
}

// ResolvedRule is one RuleBreakdown with its metrics read back from a solver
// response, keyed by "team/employee" — the shape the reporter and console
// output consume without needing to know about CP-SAT response types.
type ResolvedRule struct {
	Rule        string
	PerEmployee map[string]int64
}

// Resolve reads every metric's Linear value out of response.
func (r *Result) Resolve(response *cmpb.CpSolverResponse) []ResolvedRule {
	out := make([]ResolvedRule, len(r.Breakdown))
	for i, rb := range r.Breakdown {
		values := make(map[string]int64, len(rb.Metrics))
		for _, m := range rb.Metrics {
			values[m.Team+"/"+m.Employee] = cpmodel.SolutionIntegerValue(response, m.Linear)
		}
		out[i] = ResolvedRule{Rule: rb.Rule, PerEmployee: values}
	}
	return out
}
