package domain

// WeekdayNames is the canonical Mo..Su ordering every Week is built from.
var WeekdayNames = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Day is a weekday name plus its ordered sequence of Shifts. A Day value is
// a template: the same *Day is referenced by every Week that includes it, so
// Shift identity (and therefore decision-key identity) is stable across the
// whole horizon.
type Day struct {
	Name   string
	Shifts []Shift
}

// NewDay constructs a Day template.
func NewDay(name string, shifts ...Shift) *Day {
	cp := make([]Shift, len(shifts))
	copy(cp, shifts)
	return &Day{Name: name, Shifts: cp}
}

func (d *Day) String() string {
	return d.Name
}

// IsWeekend reports whether the day is Saturday or Sunday, used by the
// reporter's weekend shading and by nothing in the constraint builder.
func (d *Day) IsWeekend() bool {
	return d.Name == "Sa" || d.Name == "Su"
}

// WeekTemplate is the fixed Mo..Su sequence of Day prototypes a deployment
// repeats to build every Week in the horizon.
type WeekTemplate [7]*Day

// NewWeekTemplate builds a WeekTemplate, requiring one Day per entry in
// WeekdayNames in order.
func NewWeekTemplate(days ...*Day) (WeekTemplate, error) {
	var tmpl WeekTemplate
	if len(days) != len(WeekdayNames) {
		return tmpl, errTemplateLength(len(days))
	}
	for i, d := range days {
		if d.Name != WeekdayNames[i] {
			return tmpl, errTemplateOrder(i, WeekdayNames[i], d.Name)
		}
		tmpl[i] = d
	}
	return tmpl, nil
}
