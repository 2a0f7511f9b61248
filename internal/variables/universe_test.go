package variables

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
)

func fixtureHorizon(t *testing.T) (*domain.PlanningHorizon, []*domain.Team) {
	t.Helper()
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
	return horizon, teams
}

func TestBuildEnumeratesWorkPlusAbsenceKeys(t *testing.T) {
	horizon, teams := fixtureHorizon(t)
	model := cpmodel.NewCpModelBuilder()
	u := Build(model, horizon, teams)

	// 2 weeks (weeks_plus_one) * 7 days * (1 work key + vac + ill) = 42.
	want := 2 * 7 * 3
	if u.Len() != want {
		t.Errorf("Universe.Len() = %d, want %d", u.Len(), want)
	}
}

func TestBoolVarLooksUpByKey(t *testing.T) {
	horizon, teams := fixtureHorizon(t)
	model := cpmodel.NewCpModelBuilder()
	u := Build(model, horizon, teams)

	key := domain.WorkKey(horizon.Visible[0].Name, "Mo", "M", "TeamA", "Alice", "MO:M1")
	if _, ok := u.BoolVar(key); !ok {
		t.Errorf("expected BoolVar to find enumerated key %v", key)
	}
	missing := domain.WorkKey("WeekZ", "Mo", "M", "TeamA", "Alice", "MO:M1")
	if _, ok := u.BoolVar(missing); ok {
		t.Error("expected BoolVar to report false for a key outside the horizon")
	}
}

func TestMustBoolVarPanicsOnMissingKey(t *testing.T) {
	horizon, teams := fixtureHorizon(t)
	model := cpmodel.NewCpModelBuilder()
	u := Build(model, horizon, teams)

	defer func() {
		if recover() == nil {
			t.Error("expected MustBoolVar to panic on a missing key")
		}
	}()
	u.MustBoolVar(domain.WorkKey("WeekZ", "Mo", "M", "TeamA", "Alice", "MO:M1"))
}

func TestKeysPreservesEnumerationOrder(t *testing.T) {
	horizon, teams := fixtureHorizon(t)
	model := cpmodel.NewCpModelBuilder()
	u := Build(model, horizon, teams)

	keys := u.Keys()
	if len(keys) != u.Len() {
		t.Fatalf("Keys() length %d != Len() %d", len(keys), u.Len())
	}
	first := domain.WorkKey(horizon.WeeksPlusOne[0].Name, "Mo", "M", "TeamA", "Alice", "MO:M1")
	if keys[0] != first {
		t.Errorf("Keys()[0] = %v, want %v (enumeration starts team->employee->week->day->shift->skill)", keys[0], first)
	}
}
