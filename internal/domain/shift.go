package domain

// Shift is a named span within a Day (e.g. "M", "A", "N") plus the ordered
// multiset of skills it requires. Duplicates in NeededSkills are meaningful:
// a shift needing two "H:M2" slots lists the skill twice.
type Shift struct {
	Name         string
	NeededSkills []Skill
}

// NewShift constructs a Shift. needed may contain duplicate skills.
func NewShift(name string, needed ...Skill) Shift {
	cp := make([]Skill, len(needed))
	copy(cp, needed)
	return Shift{Name: name, NeededSkills: cp}
}

func (s Shift) String() string {
	return s.Name
}

// VacationShiftName/VacationSkillName and IllnessShiftName/IllnessSkillName
// are the sentinel shift/skill names used by the vacation and illness
// decision keys (spec §3). They are never present in a real Shift's
// NeededSkills.
const (
	VacationShiftName = "vac"
	VacationSkillName = "vac"
	IllnessShiftName  = "ill"
	IllnessSkillName  = "ill"
)
