package constraints

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/variables"
)

// AddCoverage is H1: every required-skill slot of every shift on every day
// is filled by exactly one employee across all teams. Grounded on
// rule_builder.py's add_every_shift_skill_is_assigned, which is literally
// model.AddExactlyOne over the same slot.
func AddCoverage(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for _, w := range horizon.WeeksPlusOne {
		for _, d := range w.Days {
			for _, shift := range d.Shifts {
				for _, sk := range shift.NeededSkills {
					vars := slotVars(u, w.Name, d.Name, shift.Name, sk.Label(), teams)
					model.AddExactlyOne(vars...)
				}
			}
		}
	}
}

// AddSkillEligibility is H3: a fixed-skill employee can never be assigned to
// a skill outside their declared set. Virtual employees (FixedSkills=false)
// are left unconstrained here; S7 discovers their effective skill set.
// Grounded on add_employee_cant_do_what_he_cant.
func AddSkillEligibility(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for _, team := range teams {
		for _, employee := range team.Employees {
			if !employee.FixedSkills {
				continue
			}
			for _, w := range horizon.WeeksPlusOne {
				for _, d := range w.Days {
					for _, shift := range d.Shifts {
						for _, sk := range shift.NeededSkills {
							if employee.HasSkill(sk) {
								continue
							}
							v := u.MustBoolVar(domain.WorkKey(w.Name, d.Name, shift.Name, team.Name, employee.Name, sk.Label()))
							model.AddEquality(v, cpmodel.NewConstant(0))
						}
					}
				}
			}
		}
	}
}

// AddTeamExclusivity is H4: for a given (week, day, shift), no two distinct
// teams may both contribute an employee. Encoded, like
// add_employees_can_only_work_with_team_members, as a pairwise BoolOr of
// negations across every skill-slot combination between the two teams —
// this is the O(teams^2 * employees^2 * skills^2) dominant memory term
// called out in spec §5.
func AddTeamExclusivity(model *cpmodel.Builder, u *variables.Universe, horizon *domain.PlanningHorizon, teams []*domain.Team) {
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			ti, tj := teams[i], teams[j]
			for _, w := range horizon.WeeksPlusOne {
				for _, d := range w.Days {
					for _, shift := range d.Shifts {
						for _, e1 := range ti.Employees {
							for _, e2 := range tj.Employees {
								for _, sk1 := range shift.NeededSkills {
									for _, sk2 := range shift.NeededSkills {
										v1 := u.MustBoolVar(domain.WorkKey(w.Name, d.Name, shift.Name, ti.Name, e1.Name, sk1.Label()))
										v2 := u.MustBoolVar(domain.WorkKey(w.Name, d.Name, shift.Name, tj.Name, e2.Name, sk2.Label()))
										model.AddBoolOr(v1.Not(), v2.Not()).
											WithName(fmt.Sprintf("H4_%s_%s_%s_%s_%s_%s_%s", w.Name, d.Name, shift.Name, ti.Name, e1.Name, tj.Name, e2.Name))
									}
								}
							}
						}
					}
				}
			}
		}
	}
}
