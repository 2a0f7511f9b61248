package constraints

import (
	"testing"

	"github.com/gridshift/roster/internal/domain"
)

func TestDailyIndicatorsOneIndicatorPerDay(t *testing.T) {
	horizon, teams, _ := smallFixture(t)
	model, u := buildUniverse(t, horizon, teams)

	isNight := func(sh domain.Shift) bool { return sh.Name == "N" }
	daily := DailyIndicators(model, u, horizon.WeeksPlusOne, "TeamA", "Alice", "test", isNight)

	wantDays := len(horizon.WeeksPlusOne) * 7
	if len(daily) != wantDays {
		t.Errorf("DailyIndicators returned %d indicators, want %d", len(daily), wantDays)
	}
}

func TestTransitionCountIncludesLeadingVirtualTransition(t *testing.T) {
	horizon, teams, _ := smallFixture(t)
	model, u := buildUniverse(t, horizon, teams)

	daily := DailyIndicators(model, u, horizon.WeeksPlusOne, "TeamA", "Alice", "test", nil)
	transitions := TransitionCount(model, daily, "test")
	if len(transitions) != len(daily) {
		t.Errorf("TransitionCount returned %d entries, want %d (one leading + one per adjacent pair)", len(transitions), len(daily))
	}
	if transitions[0] != daily[0] {
		t.Error("the first transition entry should be the leading virtual transition (daily[0] itself)")
	}
}

func TestTransitionCountEmptyInputReturnsNil(t *testing.T) {
	horizon, teams, _ := smallFixture(t)
	model, _ := buildUniverse(t, horizon, teams)
	if got := TransitionCount(model, nil, "test"); got != nil {
		t.Errorf("TransitionCount(nil) = %v, want nil", got)
	}
}

func TestAddNightContinuityAddsOneCapPerEmployee(t *testing.T) {
	horizon, teams, _ := smallFixture(t)
	model, u := buildUniverse(t, horizon, teams)

	before := constraintCount(t, model)
	AddNightContinuity(model, u, horizon, teams, "N")
	after := constraintCount(t, model)
	if after <= before {
		t.Error("expected AddNightContinuity to add constraints")
	}
}
