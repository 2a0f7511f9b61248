package solve

import (
	"context"
	"testing"
	"time"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/objective"
)

func tinyInput(t *testing.T) domain.BuildInput {
	t.Helper()
	sk := domain.NewSkill("MO:M1")
	morning := domain.NewShift("M", sk)
	night := domain.NewShift("N", sk)
	days := make([]*domain.Day, 7)
	for i, name := range domain.WeekdayNames {
		days[i] = domain.NewDay(name, morning, night)
	}
	tmpl, err := domain.NewWeekTemplate(days...)
	if err != nil {
		t.Fatalf("NewWeekTemplate: %v", err)
	}
	team, err := domain.NewTeam("TeamA",
		domain.NewEmployee("Alice", true, true, sk),
		domain.NewEmployee("Bob", true, false, sk),
	)
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	return domain.BuildInput{
		Catalog:      domain.NewCatalog("MO:M1"),
		Teams:        []*domain.Team{team},
		WeekTemplate: tmpl,
		VisibleWeeks: 1,
	}
}

func TestRunProducesAFeasibleScheduleOnATrivialInput(t *testing.T) {
	params := Params{
		Horizon:        tinyInput(t),
		NightShiftName: "N",
		Profile:        objective.ProfileRoster,
		Weights:        objective.DefaultWeights(),
		RuntimeBudget:  5 * time.Second,
		SearchWorkers:  1,
	}
	outcome, err := Run(context.Background(), params)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !outcome.Status.Ok() {
		t.Fatalf("Run status = %v, want OPTIMAL or FEASIBLE", outcome.Status)
	}
	if outcome.Schedule == nil {
		t.Fatal("expected a non-nil Schedule for an Ok status")
	}
}

func TestSeedDominatedEmployeesExcludesNonAbsenceSeedOwners(t *testing.T) {
	seedKeys := []domain.Key{
		domain.WorkKey("Week1", "Mo", "M", "TeamA", "Alice", "MO:M1"),
		domain.VacationKey("Week1", "Tu", "TeamA", "Bob"),
	}
	skip := seedDominatedEmployees(seedKeys, true)
	if !skip["TeamA/Alice"] {
		t.Error("expected the employee named by a work seed key to be skipped")
	}
	if skip["TeamA/Bob"] {
		t.Error("an absence seed key alone should not trigger seed-pin dominance")
	}
}

func TestSeedDominatedEmployeesEmptyWhenAbsenceDisabled(t *testing.T) {
	seedKeys := []domain.Key{domain.WorkKey("Week1", "Mo", "M", "TeamA", "Alice", "MO:M1")}
	skip := seedDominatedEmployees(seedKeys, false)
	if len(skip) != 0 {
		t.Errorf("expected an empty skip set when absence rules are disabled, got %v", skip)
	}
}

func TestStatusOk(t *testing.T) {
	cases := map[Status]bool{
		StatusOptimal:      true,
		StatusFeasible:     true,
		StatusInfeasible:   false,
		StatusUnknown:      false,
		StatusModelInvalid: false,
	}
	for status, want := range cases {
		if got := status.Ok(); got != want {
			t.Errorf("Status(%v).Ok() = %v, want %v", status, got, want)
		}
	}
}

func TestRunRejectsUnknownManualPinWeek(t *testing.T) {
	params := Params{
		Horizon:        tinyInput(t),
		NightShiftName: "N",
		Profile:        objective.ProfileRoster,
		Weights:        objective.DefaultWeights(),
		RuleParams: RuleParams{
			ManualPins: []ManualPin{{Team: "TeamA", Employee: "Alice", Week: "WeekZ", Day: "Mo"}},
		},
	}
	if _, err := Run(context.Background(), params); err == nil {
		t.Error("expected Run to reject a manual pin referencing an unknown week")
	}
}
