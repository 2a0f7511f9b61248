package domain

import "fmt"

// BuildInput is everything Component B (input assembly) needs: the fixed
// staff roster, the weekday shift template, the global skill catalog, and
// the number of weeks visible to the caller.
type BuildInput struct {
	Catalog      *Catalog
	Teams        []*Team
	WeekTemplate WeekTemplate
	VisibleWeeks int
}

// Assemble validates BuildInput against spec §3's invariants and returns the
// PlanningHorizon plus the Teams, ready for the variable universe (Component
// C). It checks the catalog, the team list and skill references itself;
// duplicate employee names, day order and the week count are checked by
// NewTeam, NewWeekTemplate and NewPlanningHorizon. Downstream components
// trust these invariants.
func Assemble(in BuildInput) (*PlanningHorizon, []*Team, error) {
	if in.Catalog == nil {
		return nil, nil, fmt.Errorf("domain: assemble: nil catalog")
	}
	if len(in.Teams) == 0 {
		return nil, nil, fmt.Errorf("domain: assemble: no teams")
	}
	for _, d := range in.WeekTemplate {
		if d == nil {
			return nil, nil, fmt.Errorf("domain: assemble: incomplete week template")
		}
		for _, sh := range d.Shifts {
			for _, sk := range sh.NeededSkills {
				if _, ok := in.Catalog.Lookup(sk.Label()); !ok {
					return nil, nil, fmt.Errorf("domain: assemble: shift %s/%s references unknown skill %q", d.Name, sh.Name, sk.Label())
				}
			}
		}
	}
	for _, t := range in.Teams {
		for _, e := range t.Employees {
			if !e.FixedSkills {
				continue
			}
			for _, sk := range e.Skills {
				if _, ok := in.Catalog.Lookup(sk.Label()); !ok {
					return nil, nil, fmt.Errorf("domain: assemble: employee %s/%s has unknown skill %q", t.Name, e.Name, sk.Label())
				}
			}
		}
	}

	horizon, err := NewPlanningHorizon(in.VisibleWeeks, in.WeekTemplate)
	if err != nil {
		return nil, nil, fmt.Errorf("domain: assemble: %w", err)
	}
	return horizon, in.Teams, nil
}
