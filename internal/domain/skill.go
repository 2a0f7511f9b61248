// Package domain holds the immutable value types shared by every other
// package in this repository: skills, shifts, days, weeks, employees, teams,
// and the planning horizon they compose into.
package domain

// Skill is a named atom identified by a stable string label, e.g. "MO:M1" or
// "H:M2". Two Skills are equal iff their labels are equal.
type Skill struct {
	label string
}

// NewSkill returns the Skill identified by label.
func NewSkill(label string) Skill {
	return Skill{label: label}
}

// Label returns the skill's stable string identity.
func (s Skill) Label() string {
	return s.label
}

func (s Skill) String() string {
	return s.label
}

// Catalog is the closed set of skills a deployment recognizes. Shifts and
// employees may only reference skills present in the Catalog; this is
// enforced at build time by the horizon assembler, not here.
type Catalog struct {
	skills map[string]Skill
	order  []Skill
}

// NewCatalog builds a Catalog from an ordered list of skill labels. Duplicate
// labels collapse to a single Skill.
func NewCatalog(labels ...string) *Catalog {
	c := &Catalog{skills: make(map[string]Skill, len(labels))}
	for _, l := range labels {
		if _, ok := c.skills[l]; ok {
			continue
		}
		sk := NewSkill(l)
		c.skills[l] = sk
		c.order = append(c.order, sk)
	}
	return c
}

// Lookup returns the Skill for label and whether it is present in the
// Catalog.
func (c *Catalog) Lookup(label string) (Skill, bool) {
	sk, ok := c.skills[label]
	return sk, ok
}

// Skills returns the catalog's skills in registration order.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.order))
	copy(out, c.order)
	return out
}
