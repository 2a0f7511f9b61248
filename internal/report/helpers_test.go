package report

import (
	"testing"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/result"
)

func TestSkillsStringJoinsWithCommaSpace(t *testing.T) {
	skills := []domain.Skill{domain.NewSkill("MO:M1"), domain.NewSkill("H:M2")}
	if got, want := skillsString(skills), "MO:M1, H:M2"; got != want {
		t.Errorf("skillsString = %q, want %q", got, want)
	}
}

func TestSkillsStringEmpty(t *testing.T) {
	if got := skillsString(nil); got != "" {
		t.Errorf("skillsString(nil) = %q, want empty string", got)
	}
}

func TestAssignedKeysFiltersByWeekDayTeamEmployee(t *testing.T) {
	week := &domain.Week{Name: "Week1"}
	day := &domain.Day{Name: "Mo"}
	wd := domain.WeekDay{Week: week, Day: day}

	match := domain.WorkKey("Week1", "Mo", "M", "TeamA", "Alice", "MO:M1")
	otherDay := domain.WorkKey("Week1", "Tu", "M", "TeamA", "Alice", "MO:M1")
	otherEmployee := domain.WorkKey("Week1", "Mo", "M", "TeamA", "Bob", "MO:M1")
	notAssigned := domain.WorkKey("Week1", "Mo", "N", "TeamA", "Alice", "MO:M1")

	schedule := &result.Schedule{Keys: map[domain.Key]bool{
		match:         true,
		otherDay:      true,
		otherEmployee: true,
		notAssigned:   false,
	}}

	got := assignedKeys(schedule, wd, "TeamA", "Alice")
	if len(got) != 1 || got[0] != match {
		t.Errorf("assignedKeys = %v, want [%v]", got, match)
	}
}

func TestAllEmployeesFlattensTeams(t *testing.T) {
	teamA, err := domain.NewTeam("TeamA", domain.NewEmployee("Alice", true, false))
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	teamB, err := domain.NewTeam("TeamB", domain.NewEmployee("Bob", true, false))
	if err != nil {
		t.Fatalf("NewTeam: %v", err)
	}
	got := allEmployees([]*domain.Team{teamA, teamB})
	if len(got) != 2 {
		t.Fatalf("allEmployees returned %d employees, want 2", len(got))
	}
}
