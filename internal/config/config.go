// Package config is the ambient configuration layer: a YAML deployment file
// validated with go-playground/validator, describing the team/employee/
// shift/skill data the original source hardcoded in Input_data_creator.py,
// plus the rule toggles and solver knobs spec §6/§9 leave to deployment
// choice. Grounded on internal/config/config.go's LoadFromPath/Validate
// shape.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gridshift/roster/internal/constraints"
	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/objective"
	"github.com/gridshift/roster/internal/solve"
)

// SkillConfig is one named skill in the deployment catalog.
type SkillConfig struct {
	Label string `yaml:"label" validate:"required"`
}

// ShiftConfig is one shift within a day template, with its needed-skill
// multiset named by label.
type ShiftConfig struct {
	Name         string   `yaml:"name" validate:"required"`
	NeededSkills []string `yaml:"neededSkills" validate:"required,min=1,dive,required"`
}

// DayConfig is one weekday template entry.
type DayConfig struct {
	Name   string        `yaml:"name" validate:"required,oneof=Mo Tu We Th Fr Sa Su"`
	Shifts []ShiftConfig `yaml:"shifts" validate:"required,min=1,dive"`
}

// EmployeeConfig is one employee within a team.
type EmployeeConfig struct {
	Name           string   `yaml:"name" validate:"required"`
	Skills         []string `yaml:"skills"`
	IsShiftManager bool     `yaml:"isShiftManager"`
	FixedSkills    *bool    `yaml:"fixedSkills"`
}

func (e EmployeeConfig) fixedSkills() bool {
	if e.FixedSkills == nil {
		return true
	}
	return *e.FixedSkills
}

// TeamConfig is one team and its roster.
type TeamConfig struct {
	Name      string           `yaml:"name" validate:"required"`
	Employees []EmployeeConfig `yaml:"employees" validate:"required,min=1,dive"`
}

// RuleConfig carries the togglable hard-rule knobs (spec §9's Open
// Questions: H5 vs H6 combination, the supplemented H6b window, H12's
// absence block shape) plus the shift-cycle order and manual pins.
type RuleConfig struct {
	ShiftCycle []string `yaml:"shiftCycle"`

	// WeeklyCapEnabled and SixDayCapEnabled default to true, matching
	// SPEC_FULL's "both-on" default for H5/H6 — a nil pointer means
	// "not specified in the deployment config", not "disabled". Set
	// explicitly to false to turn either cap off.
	WeeklyCapEnabled *bool `yaml:"weeklyCapEnabled"`
	WeeklyCap        int64 `yaml:"weeklyCap" validate:"omitempty,min=1"`

	SixDayCapEnabled *bool `yaml:"sixDayCapEnabled"`
	SixDayCap        int64 `yaml:"sixDayCap" validate:"omitempty,min=1"`

	TenDayCapEnabled bool  `yaml:"tenDayCapEnabled"`
	TenDayWindowDays int   `yaml:"tenDayWindowDays" validate:"omitempty,min=1"`
	TenDayCap        int64 `yaml:"tenDayCap" validate:"omitempty,min=1"`

	AbsenceEnabled bool  `yaml:"absenceEnabled"`
	VacationBlocks int64 `yaml:"vacationBlocks" validate:"omitempty,min=0"`
	VacationLength int64 `yaml:"vacationLength" validate:"omitempty,min=0"`
	IllnessBlocks  int64 `yaml:"illnessBlocks" validate:"omitempty,min=0"`
	IllnessLength  int64 `yaml:"illnessLength" validate:"omitempty,min=0"`

	ManualPins []ManualPinConfig `yaml:"manualPins"`
}

func (r RuleConfig) weeklyCapEnabled() bool {
	if r.WeeklyCapEnabled == nil {
		return true
	}
	return *r.WeeklyCapEnabled
}

func (r RuleConfig) sixDayCapEnabled() bool {
	if r.SixDayCapEnabled == nil {
		return true
	}
	return *r.SixDayCapEnabled
}

// ManualPinConfig is one H13 manual-absence instruction.
type ManualPinConfig struct {
	Team     string `yaml:"team" validate:"required"`
	Employee string `yaml:"employee" validate:"required"`
	Week     string `yaml:"week" validate:"required"`
	Day      string `yaml:"day" validate:"required,oneof=Mo Tu We Th Fr Sa Su"`
}

// WeightConfig overrides spec §4.3's default soft-constraint weights.
// Zero means "use the default" (weights of exactly zero are not a
// meaningful deployment choice, so the zero value doubles as "unset").
type WeightConfig struct {
	Transitions      int64 `yaml:"transitions"`
	NightTransitions int64 `yaml:"nightTransitions"`
	NightBalance     int64 `yaml:"nightBalance"`
	ShiftBalance     int64 `yaml:"shiftBalance"`
	Overtime         int64 `yaml:"overtime"`
	OvertimeTenDay   int64 `yaml:"overtimeTenDay"`
	Headcount        int64 `yaml:"headcount"`
	SkillFootprint   int64 `yaml:"skillFootprint"`
}

// Config is the full deployment descriptor: roster data, rule toggles, and
// solver knobs (spec §6 "CLI / driver").
type Config struct {
	Days  []DayConfig  `yaml:"days" validate:"required,len=7,dive"`
	Teams []TeamConfig `yaml:"teams" validate:"required,min=1,dive"`

	VisibleWeeks   int    `yaml:"visibleWeeks" validate:"required,min=1"`
	NightShiftName string `yaml:"nightShiftName" validate:"required"`

	Profile         string       `yaml:"profile" validate:"required,oneof=roster staffing_analysis"`
	WeightOverrides WeightConfig `yaml:"weights"`
	Rules           RuleConfig   `yaml:"rules"`

	SeedWorkbookPath string `yaml:"seedWorkbookPath"`

	RuntimeBudgetSeconds int   `yaml:"runtimeBudgetSeconds" validate:"omitempty,min=0"`
	SearchWorkers        int32 `yaml:"searchWorkers" validate:"omitempty,min=1"`
}

var validate = validator.New()

// LoadFromPath reads and validates a deployment config from path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate runs struct-tag validation plus the cross-field checks the tags
// cannot express (Mo..Su day order, at least one shift manager per team, and
// a nonzero value for every enabled cap). Duplicate employee names are
// rejected later, by BuildInput.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}
	for i, d := range cfg.Days {
		if d.Name != domain.WeekdayNames[i] {
			return fmt.Errorf("config: days[%d] must be %q, got %q", i, domain.WeekdayNames[i], d.Name)
		}
	}
	for _, t := range cfg.Teams {
		hasManager := false
		for _, e := range t.Employees {
			if e.IsShiftManager {
				hasManager = true
				break
			}
		}
		if !hasManager {
			return fmt.Errorf("config: team %q has no shift manager", t.Name)
		}
	}
	if cfg.Rules.weeklyCapEnabled() && cfg.Rules.WeeklyCap <= 0 {
		return fmt.Errorf("config: rules.weeklyCap must be >=1 when the weekly cap is enabled")
	}
	if cfg.Rules.sixDayCapEnabled() && cfg.Rules.SixDayCap <= 0 {
		return fmt.Errorf("config: rules.sixDayCap must be >=1 when the six-day window cap is enabled")
	}
	if cfg.Rules.TenDayCapEnabled && cfg.Rules.TenDayCap <= 0 {
		return fmt.Errorf("config: rules.tenDayCap must be >=1 when the ten-day window cap is enabled")
	}
	return nil
}

// BuildInput converts the validated config into domain.BuildInput, the
// typed shape Component B's Assemble consumes.
func (c *Config) BuildInput() (domain.BuildInput, error) {
	skillSeen := make(map[string]bool)
	var skillLabels []string
	addSkill := func(label string) {
		if skillSeen[label] {
			return
		}
		skillSeen[label] = true
		skillLabels = append(skillLabels, label)
	}

	days := make([]*domain.Day, len(c.Days))
	for i, dc := range c.Days {
		shifts := make([]domain.Shift, len(dc.Shifts))
		for j, sc := range dc.Shifts {
			skills := make([]domain.Skill, len(sc.NeededSkills))
			for k, label := range sc.NeededSkills {
				addSkill(label)
				skills[k] = domain.NewSkill(label)
			}
			shifts[j] = domain.NewShift(sc.Name, skills...)
		}
		days[i] = domain.NewDay(dc.Name, shifts...)
	}
	tmpl, err := domain.NewWeekTemplate(days...)
	if err != nil {
		return domain.BuildInput{}, fmt.Errorf("config: week template: %w", err)
	}

	teams := make([]*domain.Team, len(c.Teams))
	for i, tc := range c.Teams {
		employees := make([]domain.Employee, len(tc.Employees))
		for j, ec := range tc.Employees {
			skills := make([]domain.Skill, len(ec.Skills))
			for k, label := range ec.Skills {
				addSkill(label)
				skills[k] = domain.NewSkill(label)
			}
			employees[j] = domain.NewEmployee(ec.Name, ec.fixedSkills(), ec.IsShiftManager, skills...)
		}
		team, err := domain.NewTeam(tc.Name, employees...)
		if err != nil {
			return domain.BuildInput{}, fmt.Errorf("config: %w", err)
		}
		teams[i] = team
	}

	return domain.BuildInput{
		Catalog:      domain.NewCatalog(skillLabels...),
		Teams:        teams,
		WeekTemplate: tmpl,
		VisibleWeeks: c.VisibleWeeks,
	}, nil
}

// Weights resolves the WeightConfig overrides on top of spec §4.3's
// defaults.
func (c *Config) Weights() objective.Weights {
	d := objective.DefaultWeights()
	w := c.WeightOverrides
	apply := func(dst *int64, override int64) {
		if override != 0 {
			*dst = override
		}
	}
	apply(&d.Transitions, w.Transitions)
	apply(&d.NightTransitions, w.NightTransitions)
	apply(&d.NightBalance, w.NightBalance)
	apply(&d.ShiftBalance, w.ShiftBalance)
	apply(&d.Overtime, w.Overtime)
	apply(&d.OvertimeTenDay, w.OvertimeTenDay)
	apply(&d.Headcount, w.Headcount)
	apply(&d.SkillFootprint, w.SkillFootprint)
	return d
}

// RuleParams converts RuleConfig into solve.RuleParams.
func (c *Config) RuleParams() solve.RuleParams {
	r := c.Rules
	pins := make([]solve.ManualPin, len(r.ManualPins))
	for i, p := range r.ManualPins {
		pins[i] = solve.ManualPin{Team: p.Team, Employee: p.Employee, Week: p.Week, Day: p.Day}
	}
	return solve.RuleParams{
		Cycle:            r.ShiftCycle,
		WeeklyCapEnabled: r.weeklyCapEnabled(),
		WeeklyCap:        r.WeeklyCap,
		SixDayCapEnabled: r.sixDayCapEnabled(),
		SixDayCap:        r.SixDayCap,
		TenDayCapEnabled: r.TenDayCapEnabled,
		TenDayWindowDays: r.TenDayWindowDays,
		TenDayCap:        r.TenDayCap,
		AbsenceEnabled:   r.AbsenceEnabled,
		AbsenceBlockParam: constraints.AbsenceBlockParams{
			VacationBlocks: r.VacationBlocks,
			VacationLength: r.VacationLength,
			IllnessBlocks:  r.IllnessBlocks,
			IllnessLength:  r.IllnessLength,
		},
		ManualPins: pins,
	}
}

// RuntimeBudget converts RuntimeBudgetSeconds into a time.Duration, 0
// meaning "no budget" (run until OPTIMAL or infeasible).
func (c *Config) RuntimeBudget() time.Duration {
	return time.Duration(c.RuntimeBudgetSeconds) * time.Second
}

// AssembleHorizon re-runs Component B, for callers (the reporter) that need
// the PlanningHorizon and Teams after a solve has already consumed one
// BuildInput. Cheap and pure, so recomputing is simpler than threading the
// first horizon through solve.Outcome.
func (c *Config) AssembleHorizon() (*domain.PlanningHorizon, []*domain.Team, error) {
	in, err := c.BuildInput()
	if err != nil {
		return nil, nil, err
	}
	return domain.Assemble(in)
}
