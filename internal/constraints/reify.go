// Package constraints builds every hard (H1-H14) and soft (S1-S7) rule of
// spec §4 on top of a variables.Universe, using the CP-SAT collaborator
// interface (github.com/google/or-tools/ortools/sat/go/cpmodel) named in
// spec §6. This is Component D of the system.
package constraints

import "github.com/google/or-tools/ortools/sat/go/cpmodel"

// Indicator creates a fresh BoolVar b such that b <=> (sum >= threshold),
// over a sum known to lie in [0, upperBound]. This is the "reified helper"
// combinator from the design notes: most rules below reduce to "compute a
// sum, gate a Boolean on a threshold of that sum, then enforce something
// when the Boolean is true (and optionally something else when false)".
func Indicator(model *cpmodel.Builder, name string, sum cpmodel.LinearArgument, threshold, upperBound int64) cpmodel.BoolVar {
	b := model.NewBoolVar().WithName(name)
	if threshold <= 0 {
		// sum >= 0 always holds; b is forced true and the Not() branch is
		// unreachable, but we still wire both halves so callers can treat
		// Indicator uniformly.
		model.AddGreaterOrEqual(sum, cpmodel.NewConstant(0)).OnlyEnforceIf(b)
		model.AddLessThan(sum, cpmodel.NewConstant(0)).OnlyEnforceIf(b.Not())
		return b
	}
	model.AddGreaterOrEqual(sum, cpmodel.NewConstant(threshold)).OnlyEnforceIf(b)
	model.AddLessThan(sum, cpmodel.NewConstant(threshold)).OnlyEnforceIf(b.Not())
	_ = upperBound
	return b
}

// EqualsIndicator creates a fresh BoolVar b such that b <=> (sum == value).
func EqualsIndicator(model *cpmodel.Builder, name string, sum cpmodel.LinearArgument, value int64) cpmodel.BoolVar {
	b := model.NewBoolVar().WithName(name)
	model.AddEquality(sum, cpmodel.NewConstant(value)).OnlyEnforceIf(b)
	model.AddNotEqual(sum, cpmodel.NewConstant(value)).OnlyEnforceIf(b.Not())
	return b
}

// SquaredCost builds the `(weight * metric)^2` auxiliary pair a soft rule
// contributes to the objective: a linear auxiliary equal to weight*metric
// (returned for per-employee reporting) and its square (added to the
// minimize list). Grounded on the AddMultiplicationEquality idiom the
// teacher's boolean_product_sample_sat.go and the original rule_builder.py's
// repeated "*_mul" variables both use.
func SquaredCost(model *cpmodel.Builder, name string, metric cpmodel.LinearArgument, weight, maxMetric int64) (linear cpmodel.IntVar, squared cpmodel.IntVar) {
	maxLinear := weight * maxMetric
	linear = model.NewIntVar(0, maxLinear).WithName(name + "_linear")
	model.AddEquality(linear, cpmodel.NewLinearExpr().AddTerm(metric, weight))
	squared = model.NewIntVar(0, maxLinear*maxLinear).WithName(name + "_squared")
	model.AddMultiplicationEquality(squared, linear, linear)
	return linear, squared
}
