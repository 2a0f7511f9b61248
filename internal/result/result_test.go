package result

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

func TestProjectDropsWeeksPlusOneTail(t *testing.T) {
	sk := domain.NewSkill("MO:M1")
	morning := domain.NewShift("M", sk)
	days := make([]*domain.Day, 7)
	for i, name := range domain.WeekdayNames {
		days[i] = domain.NewDay(name, morning)
	}
	tmpl, err := domain.NewWeekTemplate(days...)
	if err != nil {
		t.Fatalf("NewWeekTemplate: %v", err)
	}
	team, err := domain.NewTeam("TeamA", domain.NewEmployee("Alice", true, false, sk))
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	horizon, teams, err := domain.Assemble(domain.BuildInput{
		Catalog:      domain.NewCatalog("MO:M1"),
		Teams:        []*domain.Team{team},
		WeekTemplate: tmpl,
		VisibleWeeks: 1,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	model := cpmodel.NewCpModelBuilder()
	u := variables.Build(model, horizon, teams)

	// Pin one key in the visible week and one in the trailing week, both
	// true, then confirm only the visible one survives projection.
	visibleKey := domain.WorkKey(horizon.Visible[0].Name, "Mo", "M", "TeamA", "Alice", "MO:M1")
	trailingKey := domain.WorkKey(horizon.WeeksPlusOne[1].Name, "Mo", "M", "TeamA", "Alice", "MO:M1")
	model.AddEquality(u.MustBoolVar(visibleKey), cpmodel.NewConstant(1))
	model.AddEquality(u.MustBoolVar(trailingKey), cpmodel.NewConstant(1))

	cm, err := model.Model()
	if err != nil {
		t.Fatalf("model.Model(): %v", err)
	}
	response, err := cpmodel.SolveCpModel(cm)
	if err != nil {
		t.Fatalf("SolveCpModel: %v", err)
	}
	if response.GetStatus() != cmpb.CpSolverStatus_OPTIMAL && response.GetStatus() != cmpb.CpSolverStatus_FEASIBLE {
		t.Fatalf("solve status = %v, want OPTIMAL or FEASIBLE", response.GetStatus())
	}

	schedule := Project(response, u, horizon)
	if !schedule.Keys[visibleKey] {
		t.Error("expected the visible-week key to survive projection")
	}
	if schedule.Keys[trailingKey] {
		t.Error("expected the trailing weeks_plus_one key to be stripped by projection")
	}

	want := map[domain.Key]bool{visibleKey: true}
	if diff := cmp.Diff(want, schedule.Keys); diff != "" {
		t.Errorf("projected keys mismatch (-want +got):\n%s", diff)
	}
}
