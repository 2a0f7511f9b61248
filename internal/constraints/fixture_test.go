package constraints

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// smallFixture builds a two-team, two-employee-per-team horizon over one
// visible week (plus the trailing week), with a single skill and a
// morning/night shift pair — small enough that every constraint builder in
// this package can run against it without the combinatorics in
// AddTeamExclusivity blowing up the test.
func smallFixture(t *testing.T) (*domain.PlanningHorizon, []*domain.Team, *domain.Catalog) {
	t.Helper()

	skM1 := domain.NewSkill("MO:M1")
	morning := domain.NewShift("M", skM1)
	night := domain.NewShift("N", skM1)

	days := make([]*domain.Day, 7)
	for i, name := range domain.WeekdayNames {
		days[i] = domain.NewDay(name, morning, night)
	}
	tmpl, err := domain.NewWeekTemplate(days...)
	if err != nil {
		t.Fatalf("NewWeekTemplate: %v", err)
	}

	teamA, err := domain.NewTeam("TeamA",
		domain.NewEmployee("Alice", true, true, skM1),
		domain.NewEmployee("Bob", true, false, skM1),
	)
	if err != nil {
		t.Fatalf("NewTeam TeamA: %v", err)
	}
	teamB, err := domain.NewTeam("TeamB",
		domain.NewEmployee("Carol", true, true, skM1),
		domain.NewEmployee("Dave", true, false, skM1),
	)
	if err != nil {
		t.Fatalf("NewTeam TeamB: %v", err)
	}
	teams := []*domain.Team{teamA, teamB}
	catalog := domain.NewCatalog("MO:M1")

	horizon, _, err := domain.Assemble(domain.BuildInput{
		Catalog:      catalog,
		Teams:        teams,
		WeekTemplate: tmpl,
		VisibleWeeks: 1,
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return horizon, teams, catalog
}

func buildUniverse(t *testing.T, horizon *domain.PlanningHorizon, teams []*domain.Team) (*cpmodel.Builder, *variables.Universe) {
	t.Helper()
	model := cpmodel.NewCpModelBuilder()
	u := variables.Build(model, horizon, teams)
	return model, u
}

func constraintCount(t *testing.T, model *cpmodel.Builder) int {
	t.Helper()
	cm, err := model.Model()
	if err != nil {
		t.Fatalf("model.Model(): %v", err)
	}
	return len(cm.GetConstraints())
}
