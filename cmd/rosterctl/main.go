// Command rosterctl is the CLI driver (spec §6): it loads a deployment
// config, runs the constraint-model build and solve, and either writes a
// roster workbook or prints a staffing-analysis breakdown. Grounded on
// cmd/cli/main.go's App-struct-plus-cobra-subcommand shape.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridshift/roster/internal/config"
	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/objective"
	"github.com/gridshift/roster/internal/report"
	"github.com/gridshift/roster/internal/rosterlog"
	"github.com/gridshift/roster/internal/seed"
	"github.com/gridshift/roster/internal/solve"
)

// App holds the dependencies every subcommand shares once initApp has run.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	cleanup func()
	runID   string
}

var (
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Cyclic shift roster constraint engine",
		Long:  "rosterctl builds and solves a CP-SAT shift roster model from a deployment config.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.cleanup != nil {
				app.cleanup()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "rosterctl.yaml", "path to the deployment config")

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(staffingCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initApp() error {
	cfg, err := config.LoadFromPath(configPath)
	if err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	runID := uuid.NewString()
	logger, cleanup, err := rosterlog.New("logs", runID)
	if err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	app = &App{cfg: cfg, logger: logger, cleanup: cleanup, runID: runID}
	return nil
}

func buildCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Solve the roster objective and write a workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(cmd.Context(), objective.ProfileRoster, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "roster.xlsx", "output workbook path")
	return cmd
}

func staffingCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "staffing",
		Short: "Solve the staffing-analysis objective (minimum headcount and skill footprint)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndReport(cmd.Context(), objective.ProfileStaffingAnalysis, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "staffing.xlsx", "output workbook path (accepted, but the staffing profile writes no workbook)")
	return cmd
}

func runAndReport(ctx context.Context, profile objective.Profile, outPath string) error {
	buildInput, err := app.cfg.BuildInput()
	if err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	var seedKeys []domain.Key
	if app.cfg.SeedWorkbookPath != "" {
		seedKeys, err = seed.Load(app.cfg.SeedWorkbookPath)
		if err != nil {
			return fmt.Errorf("rosterctl: loading seed: %w", err)
		}
	}

	params := solve.Params{
		Horizon:        buildInput,
		SeedKeys:       seedKeys,
		NightShiftName: app.cfg.NightShiftName,
		Profile:        profile,
		Weights:        app.cfg.Weights(),
		RuleParams:     app.cfg.RuleParams(),
		RuntimeBudget:  app.cfg.RuntimeBudget(),
		SearchWorkers:  app.cfg.SearchWorkers,
	}
	if params.SearchWorkers == 0 {
		params.SearchWorkers = 8
	}

	app.logger.Info("solve starting", zap.String("profile", string(profile)))
	outcome, err := solve.Run(ctx, params)
	if err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	app.logger.Info("solve finished", zap.String("status", outcome.Status.String()))
	if len(outcome.UnknownSeedKeys) > 0 {
		app.logger.Warn("seed referenced keys outside the build universe", zap.Int("count", len(outcome.UnknownSeedKeys)))
	}

	if !outcome.Status.Ok() {
		fmt.Printf("status: %s\n", outcome.Status)
		os.Exit(1)
	}

	consoleBreakdown := make([]report.ConsoleBreakdown, len(outcome.Resolved))
	for i, rr := range outcome.Resolved {
		consoleBreakdown[i] = report.ConsoleBreakdown{ColumnName: rr.Rule, PerEmployee: rr.PerEmployee}
	}
	if err := report.WriteConsole(os.Stdout, consoleBreakdown); err != nil {
		return fmt.Errorf("rosterctl: %w", err)
	}

	if profile == objective.ProfileRoster {
		horizon, teams, err := app.cfg.AssembleHorizon()
		if err != nil {
			return fmt.Errorf("rosterctl: %w", err)
		}
		totals := make([]report.RuleTotals, len(outcome.Resolved))
		for i, rr := range outcome.Resolved {
			totals[i] = report.RuleTotals{Rule: rr.Rule, PerEmployee: rr.PerEmployee}
		}
		if err := report.WriteWorkbook(outPath, horizon, teams, outcome.Schedule, totals, report.Palette{}); err != nil {
			return fmt.Errorf("rosterctl: %w", err)
		}
		fmt.Printf("wrote %s\n", outPath)
	}

	fmt.Printf("status: %s\n", outcome.Status)
	return nil
}
