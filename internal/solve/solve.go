// Package solve is the driver glue: it assembles the domain, variable
// universe, constraints, and objective (Components B-E) into one CP-SAT
// model, invokes the collaborator solver, and classifies the outcome per
// spec §5 and §7.
package solve

import (
	"context"
	"fmt"
	"time"

	log "github.com/golang/glog"
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"

	"github.com/gridshift/roster/internal/constraints"
	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/objective"
	"github.com/gridshift/roster/internal/result"
	"github.com/gridshift/roster/internal/variables"
)

// Status is the driver's classification of a completed solve attempt (spec
// §5: "{OPTIMAL, FEASIBLE, INFEASIBLE, UNKNOWN, MODEL_INVALID}").
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusFeasible
	StatusInfeasible
	StatusModelInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// Ok reports whether a Status carries a usable schedule (spec §7: "only the
// first two yield a result").
func (s Status) Ok() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Params are the CLI/driver invocation parameters named in spec §6.
type Params struct {
	Horizon        domain.BuildInput
	SeedKeys       []domain.Key
	NightShiftName string
	Profile        objective.Profile
	Weights        objective.Weights
	RuleParams     RuleParams
	RuntimeBudget  time.Duration
	SearchWorkers  int32
}

// RuleParams bundles the togglable hard-rule knobs spec §9's Open Questions
// leave to deployment configuration.
type RuleParams struct {
	Cycle             constraints.ShiftCycle
	WeeklyCapEnabled  bool
	WeeklyCap         int64
	SixDayCapEnabled  bool
	SixDayCap         int64
	TenDayCapEnabled  bool
	TenDayWindowDays  int
	TenDayCap         int64
	AbsenceEnabled    bool
	AbsenceBlockParam constraints.AbsenceBlockParams
	ManualPins        []ManualPin
}

// ManualPin is one H13 manual-absence instruction.
type ManualPin struct {
	Team     string
	Employee string
	Week     string
	Day      string
}

// Outcome is a completed solve attempt: Status, the projected Schedule (nil
// unless Status.Ok()), and the objective breakdown for reporting.
type Outcome struct {
	Status          Status
	Schedule        *result.Schedule
	Objective       *objective.Result
	Resolved        []objective.ResolvedRule
	UnknownSeedKeys []domain.Key
}

// Run assembles and solves one model end to end (Components B through G).
func Run(ctx context.Context, p Params) (*Outcome, error) {
	horizon, teams, err := domain.Assemble(p.Horizon)
	if err != nil {
		return nil, fmt.Errorf("solve: invalid input: %w", err)
	}

	model := cpmodel.NewCpModelBuilder()
	u := variables.Build(model, horizon, teams)
	log.Infof("solve: built %d decision variables", u.Len())

	constraints.AddCoverage(model, u, horizon, teams)
	constraints.AddOneShiftPerDay(model, u, horizon, teams)
	constraints.AddSkillEligibility(model, u, horizon, teams)
	constraints.AddTeamExclusivity(model, u, horizon, teams)
	if p.RuleParams.WeeklyCapEnabled {
		constraints.AddWeeklyCap(model, u, horizon, teams, p.RuleParams.WeeklyCap)
	}
	if p.RuleParams.SixDayCapEnabled {
		constraints.AddSlidingWindowCap(model, u, horizon, teams, 6, p.RuleParams.SixDayCap)
	}
	if p.RuleParams.TenDayCapEnabled {
		constraints.AddSlidingWindowCap(model, u, horizon, teams, p.RuleParams.TenDayWindowDays, p.RuleParams.TenDayCap)
	}
	constraints.AddSingleShiftKindPerWeek(model, u, horizon, teams)
	constraints.AddTwoShiftRest(model, u, horizon, teams)
	if len(p.RuleParams.Cycle) > 0 {
		constraints.AddShiftCycle(model, u, horizon, teams, p.RuleParams.Cycle)
	}
	constraints.AddShiftManagerPresence(model, u, horizon, teams)
	constraints.AddNightContinuity(model, u, horizon, teams, p.NightShiftName)

	seedSkip := seedDominatedEmployees(p.SeedKeys, p.RuleParams.AbsenceEnabled)
	governed := make(map[string]bool)
	if p.RuleParams.AbsenceEnabled {
		constraints.AddAbsenceBlocks(model, u, horizon, teams, p.RuleParams.AbsenceBlockParam, seedSkip)
		for _, team := range teams {
			for _, e := range team.Employees {
				key := team.Name + "/" + e.Name
				if !seedSkip[key] {
					governed[key] = true
				}
			}
		}
	}

	exempt := make(map[domain.Key]bool)
	for _, pin := range p.RuleParams.ManualPins {
		w := findWeek(horizon, pin.Week)
		if w == nil {
			return nil, fmt.Errorf("solve: manual pin references unknown week %q", pin.Week)
		}
		d := findDay(horizon, pin.Week, pin.Day)
		if d == nil {
			return nil, fmt.Errorf("solve: manual pin references unknown day %q in week %q", pin.Day, pin.Week)
		}
		constraints.AddManualAbsencePin(model, u, pin.Team, pin.Employee, domain.WeekDay{Week: w, Day: d})
		exempt[domain.VacationKey(w.Name, d.Name, pin.Team, pin.Employee)] = true
		exempt[domain.IllnessKey(w.Name, d.Name, pin.Team, pin.Employee)] = true
	}
	unknownSeed := constraints.AddSeedPins(model, u, p.SeedKeys)
	for _, k := range p.SeedKeys {
		if k.IsAbsence() {
			exempt[k] = true
		}
	}
	constraints.PinUnusedAbsence(model, u, horizon, teams, governed, exempt)

	catalog := collectCatalog(horizon)
	objResult, err := objective.Build(model, u, horizon, teams, catalog, p.NightShiftName, p.Profile, p.Weights)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	cm, err := model.Model()
	if err != nil {
		return &Outcome{Status: StatusModelInvalid}, fmt.Errorf("solve: model invalid: %w", err)
	}

	params := &sppb.SatParameters{
		NumSearchWorkers: proto.Int32(p.SearchWorkers),
	}
	if p.RuntimeBudget > 0 {
		params.MaxTimeInSeconds = proto.Float64(p.RuntimeBudget.Seconds())
	}

	response, err := solveInterruptible(ctx, cm, params)
	if err != nil {
		return nil, fmt.Errorf("solve: solver failed: %w", err)
	}

	status := classify(response.GetStatus())
	outcome := &Outcome{Status: status, Objective: objResult, UnknownSeedKeys: unknownSeed}
	if status.Ok() {
		outcome.Schedule = result.Project(response, u, horizon)
		outcome.Resolved = objResult.Resolve(response)
	}
	return outcome, nil
}

func solveInterruptible(ctx context.Context, cm *cmpb.CpModelProto, params *sppb.SatParameters) (*cmpb.CpSolverResponse, error) {
	interrupt := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			close(interrupt)
		case <-done:
		}
	}()
	return cpmodel.SolveCpModelInterruptibleWithParameters(cm, params, interrupt)
}

func classify(s cmpb.CpSolverStatus) Status {
	switch s {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return StatusInfeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return StatusModelInvalid
	default:
		return StatusUnknown
	}
}

// seedDominatedEmployees resolves spec §9's absence-versus-seeding Open
// Question as option (b): when H12 and H14 are both active, seed pins
// dominate and H12's block structure is suppressed for any employee the
// seed mentions.
func seedDominatedEmployees(seed []domain.Key, absenceEnabled bool) map[string]bool {
	skip := make(map[string]bool)
	if !absenceEnabled {
		return skip
	}
	for _, k := range seed {
		if k.IsAbsence() {
			continue
		}
		skip[k.Team+"/"+k.Employee] = true
	}
	return skip
}

func collectCatalog(horizon *domain.PlanningHorizon) *domain.Catalog {
	seen := make(map[string]bool)
	var labels []string
	for _, w := range horizon.WeeksPlusOne {
		for _, d := range w.Days {
			for _, sh := range d.Shifts {
				for _, sk := range sh.NeededSkills {
					if seen[sk.Label()] {
						continue
					}
					seen[sk.Label()] = true
					labels = append(labels, sk.Label())
				}
			}
		}
	}
	return domain.NewCatalog(labels...)
}

func findWeek(horizon *domain.PlanningHorizon, name string) *domain.Week {
	for _, w := range horizon.WeeksPlusOne {
		if w.Name == name {
			return w
		}
	}
	return nil
}

func findDay(horizon *domain.PlanningHorizon, weekName, dayName string) *domain.Day {
	w := findWeek(horizon, weekName)
	if w == nil {
		return nil
	}
	for _, d := range w.Days {
		if d.Name == dayName {
			return d
		}
	}
	return nil
}
