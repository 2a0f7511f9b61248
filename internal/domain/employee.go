package domain

// Employee is a named member of a Team with a set of Skills, a shift-manager
// flag, and a FixedSkills flag. When FixedSkills is false the employee is
// "virtual": eligible for any skill, with the model itself deciding (via S6
// and S7) which skills and how much headcount the employee actually
// contributes.
type Employee struct {
	Name           string
	Skills         []Skill
	IsShiftManager bool
	FixedSkills    bool
}

// NewEmployee constructs an Employee. fixedSkills defaults to true in the
// catalog loader unless a deployment explicitly marks the employee virtual.
func NewEmployee(name string, fixedSkills bool, isShiftManager bool, skills ...Skill) Employee {
	cp := make([]Skill, len(skills))
	copy(cp, skills)
	return Employee{Name: name, Skills: cp, IsShiftManager: isShiftManager, FixedSkills: fixedSkills}
}

// HasSkill reports whether the employee's declared skill set contains sk.
// Meaningless (and never consulted) for employees with FixedSkills false.
func (e Employee) HasSkill(sk Skill) bool {
	for _, s := range e.Skills {
		if s == sk {
			return true
		}
	}
	return false
}

func (e Employee) String() string {
	return e.Name
}
