// Package scheduler runs one family's stop or start for one region through
// a single generic facade driven by the family descriptor table.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/yairfalse/nightshift/executor"
	"github.com/yairfalse/nightshift/telemetry"
	"github.com/yairfalse/nightshift/types"
	"github.com/yairfalse/nightshift/waiter"
)

// Result is the outcome of one family in one region.
type Result struct {
	Discovered int
	Execution  *executor.ExecutionResult
}

// Facade applies descriptors against one region's backend.
type Facade struct {
	backend   Backend
	waiter    *waiter.Waiter
	options   executor.Options
	logger    *telemetry.Logger
	telemetry *telemetry.Provider
}

// NewFacade creates a facade. w may be nil for the default wait budget.
func NewFacade(backend Backend, w *waiter.Waiter, options executor.Options, logger *telemetry.Logger, tel *telemetry.Provider) *Facade {
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	if w == nil {
		w = waiter.New(waiter.DefaultMaxAttempts, waiter.DefaultInterval, logger, tel)
	}
	return &Facade{
		backend:   backend,
		waiter:    w,
		options:   options,
		logger:    logger,
		telemetry: tel,
	}
}

// Run discovers d's resources tagged with filter and applies action.
// Per-resource failures are recorded in the result; a returned error means
// the family was aborted (discovery) or the start wait did not converge.
func (f *Facade) Run(ctx context.Context, d Descriptor, action types.ScheduleAction, filter types.TagFilter) (*Result, error) {
	engine := executor.NewEngine(f.backend.Region, d.Family, f.options, f.logger, f.telemetry)

	if d.Hierarchy != nil {
		if action == types.ActionStart {
			return f.startHierarchy(ctx, engine, d, filter)
		}
		return f.stopHierarchy(ctx, engine, d, filter)
	}
	return f.runFlat(ctx, engine, d, action, filter)
}

func (f *Facade) runFlat(ctx context.Context, engine *executor.Engine, d Descriptor, action types.ScheduleAction, filter types.TagFilter) (*Result, error) {
	ids, err := f.backend.Locator.Locate(ctx, d.ResourceType, filter)
	if err != nil {
		return nil, err
	}
	f.discovered(ctx, d, ids.Len())

	verb := d.Verbs.For(action)
	result := &executor.ExecutionResult{StartTime: time.Now()}
	targets := make([]types.Target, 0, ids.Len())

	for _, id := range ids.Items() {
		target := d.Target(id)
		if d.SkipGroupMembers {
			group, owned, err := f.backend.Groups.OwnerOf(ctx, target.ID)
			if err != nil {
				engine.Fail(ctx, result, target, verb, err)
				continue
			}
			if owned {
				engine.Skip(ctx, result, target, verb, "owned by scaling group "+group)
				continue
			}
		}
		targets = append(targets, target)
	}

	result.Merge(engine.ApplyAll(ctx, targets, verb, f.bind(d.Op(action))))
	return &Result{Discovered: ids.Len(), Execution: result}, nil
}

// stopHierarchy freezes the controllers first so they cannot replace the
// members being stopped.
func (f *Facade) stopHierarchy(ctx context.Context, engine *executor.Engine, d Descriptor, filter types.TagFilter) (*Result, error) {
	groups, err := f.backend.Groups.GroupsByTag(ctx, filter)
	if err != nil {
		return nil, err
	}

	// A failed suspend is recorded for its group; the members are still
	// stopped.
	result := engine.ApplyAll(ctx, targetsOf(d, groups), d.Verbs.Stop, f.bind(d.Stop))

	members, err := f.backend.Groups.ExpandMembers(ctx, groups)
	if err != nil {
		return nil, err
	}
	f.discovered(ctx, d, groups.Len()+members.Len())

	result.Merge(engine.ApplyAll(ctx, memberTargets(members), d.Hierarchy.MemberVerbs.Stop, f.bind(d.Hierarchy.StopMember)))
	return &Result{Discovered: groups.Len() + members.Len(), Execution: result}, nil
}

// startHierarchy starts members, waits for the started ones to be ready and
// thaws the controllers even when the wait fails.
func (f *Facade) startHierarchy(ctx context.Context, engine *executor.Engine, d Descriptor, filter types.TagFilter) (*Result, error) {
	groups, err := f.backend.Groups.GroupsByTag(ctx, filter)
	if err != nil {
		return nil, err
	}

	members, err := f.backend.Groups.ExpandMembers(ctx, groups)
	if err != nil {
		return nil, err
	}
	f.discovered(ctx, d, groups.Len()+members.Len())

	h := d.Hierarchy
	result := engine.ApplyAll(ctx, memberTargets(members), h.MemberVerbs.Start, f.bind(h.StartMember))

	waitErr := f.wait(ctx, d, result.SucceededSet(), h.ReadyState)
	if waitErr != nil {
		f.logger.WithContext(ctx).Warn().
			Err(waitErr).
			Str("region", f.backend.Region).
			Str("family", d.Family.String()).
			Msg("members not ready, resuming groups anyway")
	}

	result.Merge(engine.ApplyAll(ctx, targetsOf(d, groups), d.Verbs.Start, f.bind(d.Start)))
	return &Result{Discovered: groups.Len() + members.Len(), Execution: result}, waitErr
}

func (f *Facade) wait(ctx context.Context, d Descriptor, started *types.IDSet, ready string) error {
	if started.Len() == 0 {
		return nil
	}

	begin := time.Now()
	err := f.waiter.Until(ctx, started, f.backend.States.InstanceStates, waiter.StateIs(ready))
	f.telemetry.RecordWait(ctx, f.backend.Region, d.Family.String(), time.Since(begin), err != nil)
	if err != nil {
		return fmt.Errorf("wait for %d members: %w", started.Len(), err)
	}
	return nil
}

func (f *Facade) bind(op Op) executor.Op {
	return func(ctx context.Context, t types.Target) error {
		return op(f.backend.Actions, ctx, t)
	}
}

func (f *Facade) discovered(ctx context.Context, d Descriptor, n int) {
	f.telemetry.RecordDiscovered(ctx, f.backend.Region, d.Family.String(), n)
	f.logger.WithContext(ctx).Info().
		Str("region", f.backend.Region).
		Str("family", d.Family.String()).
		Int("count", n).
		Msg("discovered")
}

func targetsOf(d Descriptor, ids *types.IDSet) []types.Target {
	targets := make([]types.Target, 0, ids.Len())
	for _, id := range ids.Items() {
		targets = append(targets, d.Target(id))
	}
	return targets
}

func memberTargets(ids *types.IDSet) []types.Target {
	targets := make([]types.Target, 0, ids.Len())
	for _, id := range ids.Items() {
		targets = append(targets, types.Target{ARN: id, ID: id})
	}
	return targets
}
