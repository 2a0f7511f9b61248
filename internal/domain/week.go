package domain

import "fmt"

// Week is a 1-indexed planning week: a name ("Week1", "Week2", ...) and the
// seven Days it repeats from the deployment's WeekTemplate, in Mo..Su order.
type Week struct {
	Name string
	Days []*Day
}

// NewWeek builds the k'th Week (1-indexed) from a WeekTemplate. Every Week
// references the same *Day pointers; nothing is cloned.
func NewWeek(k int, tmpl WeekTemplate) *Week {
	days := make([]*Day, len(tmpl))
	copy(days, tmpl[:])
	return &Week{Name: fmt.Sprintf("Week%d", k), Days: days}
}

func (w *Week) String() string {
	return w.Name
}

// PlanningHorizon is the ordered sequence of Weeks a build targets, plus the
// one extra trailing week (WeeksPlusOne) used only so H9's shift-cycle
// constraint has a successor week to constrain the last visible week
// against. Visible is the subset reported back to the caller (spec §4.5).
type PlanningHorizon struct {
	Visible      []*Week
	WeeksPlusOne []*Week
}

// NewPlanningHorizon builds a horizon of visibleWeeks weeks (>=1), plus one
// trailing week, all drawn from tmpl.
func NewPlanningHorizon(visibleWeeks int, tmpl WeekTemplate) (*PlanningHorizon, error) {
	if visibleWeeks < 1 {
		return nil, fmt.Errorf("domain: planning horizon needs at least one week, got %d", visibleWeeks)
	}
	all := make([]*Week, visibleWeeks+1)
	for k := 1; k <= visibleWeeks+1; k++ {
		all[k-1] = NewWeek(k, tmpl)
	}
	return &PlanningHorizon{
		Visible:      all[:visibleWeeks],
		WeeksPlusOne: all,
	}, nil
}

// Days returns every Day in the WeeksPlusOne horizon, paired with its owning
// Week, in enumeration order (week, then day-of-week).
func (h *PlanningHorizon) Days() []WeekDay {
	var out []WeekDay
	for _, w := range h.WeeksPlusOne {
		for _, d := range w.Days {
			out = append(out, WeekDay{Week: w, Day: d})
		}
	}
	return out
}

// VisibleDays is Days restricted to the Visible weeks.
func (h *PlanningHorizon) VisibleDays() []WeekDay {
	var out []WeekDay
	for _, w := range h.Visible {
		for _, d := range w.Days {
			out = append(out, WeekDay{Week: w, Day: d})
		}
	}
	return out
}

// WeekDay pairs a Week with one of its Days, the unit the variable universe
// and most constraints iterate over.
type WeekDay struct {
	Week *Week
	Day  *Day
}
