// Package orchestrator runs the configured action across regions and
// families, containing every failure at the family and region level.
package orchestrator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/yairfalse/nightshift/executor"
	"github.com/yairfalse/nightshift/scheduler"
	"github.com/yairfalse/nightshift/telemetry"
	"github.com/yairfalse/nightshift/types"
	"github.com/yairfalse/nightshift/waiter"
)

// Orchestrator coordinates exclusion gate → region → family flow
type Orchestrator struct {
	cfg       Config
	factory   BackendFactory
	logger    *telemetry.Logger
	telemetry *telemetry.Provider
	now       func() time.Time
	sleep     waiter.SleepFunc
}

// NewOrchestrator creates a new orchestrator. logger and tel may be nil.
func NewOrchestrator(cfg Config, factory BackendFactory, logger *telemetry.Logger, tel *telemetry.Provider) *Orchestrator {
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	return &Orchestrator{
		cfg:       cfg,
		factory:   factory,
		logger:    logger,
		telemetry: tel,
		now:       time.Now,
	}
}

// WithClock sets the clock used by the exclusion gate
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// WithSleep sets the waiter's suspension function
func (o *Orchestrator) WithSleep(sleep waiter.SleepFunc) *Orchestrator {
	o.sleep = sleep
	return o
}

// Run executes one invocation. It always completes; failures are logged
// and reported in the result.
func (o *Orchestrator) Run(ctx context.Context) *RunResult {
	now := o.now()
	result := &RunResult{
		StartTime: now,
		Action:    o.cfg.Action,
		Date:      now.UTC().Format(types.MonthDayLayout),
	}

	ctx, span := o.telemetry.StartSpan(ctx, "nightshift.run",
		attribute.String("action", o.cfg.Action.String()),
		attribute.Bool("dry_run", o.cfg.DryRun),
	)
	defer span.End()

	if o.cfg.Calendar.Excludes(now) {
		result.Excluded = true
		telemetry.RecordExclusionEvent(span, result.Date)
		o.logger.WithContext(ctx).Info().
			Str("date", result.Date).
			Msg("excluded date, nothing to do")
		return o.finish(result)
	}

	o.logger.WithContext(ctx).Info().
		Str("action", o.cfg.Action.String()).
		Strs("regions", o.cfg.Regions).
		Str("tag", o.cfg.Filter.String()).
		Bool("dry_run", o.cfg.DryRun).
		Msg("starting run")

	result.Regions = o.runRegions(ctx)
	return o.finish(result)
}

func (o *Orchestrator) runRegions(ctx context.Context) []RegionResult {
	results := make([]RegionResult, len(o.cfg.Regions))

	if o.cfg.RegionConcurrency <= 1 {
		for i, region := range o.cfg.Regions {
			results[i] = o.runRegion(ctx, region)
		}
		return results
	}

	// A plain group: one region's failure must not cancel the others.
	var g errgroup.Group
	g.SetLimit(o.cfg.RegionConcurrency)
	for i, region := range o.cfg.Regions {
		g.Go(func() error {
			results[i] = o.runRegion(ctx, region)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (o *Orchestrator) runRegion(ctx context.Context, region string) RegionResult {
	ctx, span := o.telemetry.StartSpan(ctx, "nightshift.region", attribute.String("region", region))
	defer span.End()

	result := RegionResult{Region: region}

	backend, err := o.factory(ctx, region)
	if err != nil {
		result.Err = err
		span.RecordError(err)
		o.logger.WithContext(ctx).Error().
			Err(err).
			Str("region", region).
			Msg("region skipped")
		return result
	}

	w := waiter.New(o.cfg.WaitMaxAttempts, o.cfg.WaitInterval, o.logger, o.telemetry)
	w.Sleep = o.sleep
	facade := scheduler.NewFacade(backend, w, executor.Options{DryRun: o.cfg.DryRun}, o.logger, o.telemetry)

	for _, d := range o.enabled() {
		result.Families = append(result.Families, o.runFamily(ctx, facade, region, d))
	}
	return result
}

func (o *Orchestrator) runFamily(ctx context.Context, facade *scheduler.Facade, region string, d scheduler.Descriptor) FamilyResult {
	ctx, span := o.telemetry.StartSpan(ctx, "nightshift.family",
		attribute.String("region", region),
		attribute.String("family", d.Family.String()),
	)
	defer span.End()

	fr := FamilyResult{Region: region, Family: d.Family}

	res, err := facade.Run(ctx, d, o.cfg.Action, o.cfg.Filter)
	if res != nil {
		fr.Discovered = res.Discovered
		fr.Succeeded = res.Execution.SuccessfulCount()
		fr.Failed = res.Execution.FailedCount()
		fr.Skipped = res.Execution.SkippedCount()
	}
	if err != nil {
		fr.Err = err
		span.RecordError(err)
		o.telemetry.RecordFamilyError(ctx, region, d.Family.String())
		o.logger.LogFamilyFailed(ctx, region, d.Family, err)
		return fr
	}

	o.logger.WithContext(ctx).Info().
		Str("region", region).
		Str("family", d.Family.String()).
		Int("discovered", fr.Discovered).
		Int("succeeded", fr.Succeeded).
		Int("failed", fr.Failed).
		Int("skipped", fr.Skipped).
		Msg("family done")
	return fr
}

// enabled returns the configured families in declared order.
func (o *Orchestrator) enabled() []scheduler.Descriptor {
	want := make(map[types.Family]bool, len(o.cfg.Families))
	for _, f := range o.cfg.Families {
		want[f] = true
	}

	var out []scheduler.Descriptor
	for _, d := range scheduler.Descriptors() {
		if want[d.Family] {
			out = append(out, d)
		}
	}
	return out
}

func (o *Orchestrator) finish(result *RunResult) *RunResult {
	result.EndTime = o.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	return result
}
