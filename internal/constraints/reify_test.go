package constraints

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

func TestIndicatorWiresBothBranches(t *testing.T) {
	model := cpmodel.NewCpModelBuilder()
	x := model.NewIntVar(0, 5)
	b := Indicator(model, "ind", cpmodel.NewLinearExpr().Add(x), 3, 5)

	cm, err := model.Model()
	if err != nil {
		t.Fatalf("model.Model(): %v", err)
	}
	// Two half-reified constraints (>= threshold enforced-if b, < threshold
	// enforced-if not b); NewIntVar adds a variable, not a constraint.
	if len(cm.GetConstraints()) < 2 {
		t.Errorf("Indicator produced %d constraints, want at least 2", len(cm.GetConstraints()))
	}
	if b.Name() != "ind" {
		t.Errorf("Indicator name = %q, want %q", b.Name(), "ind")
	}
}

func TestEqualsIndicatorWiresBothBranches(t *testing.T) {
	model := cpmodel.NewCpModelBuilder()
	x := model.NewIntVar(0, 5)
	b := EqualsIndicator(model, "eq", cpmodel.NewLinearExpr().Add(x), 2)

	if b.Name() != "eq" {
		t.Errorf("EqualsIndicator name = %q, want %q", b.Name(), "eq")
	}
}

func TestSquaredCostBoundsMatchWeightTimesMaxMetric(t *testing.T) {
	model := cpmodel.NewCpModelBuilder()
	x := model.NewIntVar(0, 4)
	linear, squared := SquaredCost(model, "cost", cpmodel.NewLinearExpr().Add(x), 3, 4)

	wantMaxLinear := int64(3 * 4)
	linearDomain, err := linear.Domain()
	if err != nil {
		t.Fatalf("linear.Domain(): %v", err)
	}
	if got, ok := linearDomain.Max(); !ok || got != wantMaxLinear {
		t.Errorf("linear upper bound = %d (ok=%v), want %d", got, ok, wantMaxLinear)
	}
	wantMaxSquared := wantMaxLinear * wantMaxLinear
	squaredDomain, err := squared.Domain()
	if err != nil {
		t.Fatalf("squared.Domain(): %v", err)
	}
	if got, ok := squaredDomain.Max(); !ok || got != wantMaxSquared {
		t.Errorf("squared upper bound = %d (ok=%v), want %d", got, ok, wantMaxSquared)
	}
}
