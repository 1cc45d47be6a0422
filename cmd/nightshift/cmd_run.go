package main

import (
	"context"
	"os"
	"syscall"

	"github.com/oklog/run"
	"github.com/spf13/cobra"

	"github.com/yairfalse/nightshift/orchestrator"
	"github.com/yairfalse/nightshift/providers/aws"
	"github.com/yairfalse/nightshift/telemetry"
	"github.com/yairfalse/nightshift/types"
)

// backendFactory builds the per-region AWS backends. Replaced in tests.
var backendFactory = func(ecsStartCount int32) orchestrator.BackendFactory {
	return aws.BackendFactory(ecsStartCount)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply the configured action (SCHEDULE_ACTION)",
	Example: `  SCHEDULE_ACTION=stop AWS_REGIONS=us-east-1 TAG_KEY=Schedule TAG_VALUE=office-hours nightshift run
  nightshift run --config nightshift.yaml --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchedule(cmd, "")
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop every tagged resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchedule(cmd, types.ActionStop)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start every tagged resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchedule(cmd, types.ActionStart)
	},
}

func init() {
	rootCmd.AddCommand(runCmd, stopCmd, startCmd)
}

// runSchedule returns an error only for invalid configuration. Everything
// that goes wrong after validation is logged and reported in the result.
func runSchedule(cmd *cobra.Command, action types.ScheduleAction) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if action != "" {
		cfg.Action = action.String()
	}

	oc, err := cfg.Orchestrator()
	if err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(os.Stderr, telemetry.LoggerOptions{
		Service: cfg.OTEL.ServiceName,
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tel, err := telemetry.NewProvider(ctx, telemetry.Config{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: version,
		Endpoint:       cfg.OTEL.Endpoint,
		Insecure:       cfg.OTEL.Insecure,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		tel = nil
	}
	defer flushTelemetry(logger, tel, cfg.MetricsTextfile)

	orch := orchestrator.NewOrchestrator(oc, backendFactory(int32(cfg.ECSStartCount)), logger, tel)
	result := runWithSignals(ctx, orch.Run)
	logSummary(logger, result)
	return nil
}

// runWithSignals executes fn in an actor group with a signal handler, so
// SIGINT or SIGTERM cancels the run context.
func runWithSignals(ctx context.Context, fn func(context.Context) *orchestrator.RunResult) *orchestrator.RunResult {
	var result *orchestrator.RunResult

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	g.Add(func() error {
		result = fn(ctx)
		return nil
	}, func(error) {
		cancel()
	})
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	_ = g.Run()

	return result
}

func flushTelemetry(logger *telemetry.Logger, tel *telemetry.Provider, textfile string) {
	if textfile != "" {
		if err := tel.WriteTextfile(textfile); err != nil {
			logger.Error().Err(err).Str("path", textfile).Msg("write metrics textfile")
		}
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("telemetry shutdown")
	}
}

func logSummary(logger *telemetry.Logger, result *orchestrator.RunResult) {
	if result == nil || result.Excluded {
		return
	}

	totals := result.Totals()
	event := logger.Info()
	if errs := result.Errors(); len(errs) > 0 {
		event = logger.Warn().Int("errors", len(errs))
	}
	event.
		Str("action", result.Action.String()).
		Int("regions", len(result.Regions)).
		Int("discovered", totals.Discovered).
		Int("succeeded", totals.Succeeded).
		Int("failed", totals.Failed).
		Int("skipped", totals.Skipped).
		Dur("duration", result.Duration).
		Msg("run complete")
}
