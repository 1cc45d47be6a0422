// Package executor applies one verb to discovered resources, one call per
// resource, isolating each failure.
package executor

import (
	"context"
	"errors"
	"time"

	"github.com/yairfalse/nightshift/telemetry"
	"github.com/yairfalse/nightshift/types"
)

// Options configure executor behavior
type Options struct {
	DryRun bool
}

// Engine applies verbs for one family in one region.
type Engine struct {
	region    string
	family    types.Family
	options   Options
	logger    *telemetry.Logger
	telemetry *telemetry.Provider
}

// NewEngine creates an executor engine. logger and tel may be nil.
func NewEngine(region string, family types.Family, options Options, logger *telemetry.Logger, tel *telemetry.Provider) *Engine {
	if logger == nil {
		logger = telemetry.NopLogger()
	}
	return &Engine{
		region:    region,
		family:    family,
		options:   options,
		logger:    logger.Scoped(region, family),
		telemetry: tel,
	}
}

// Apply performs verb on target with a single call of op. It never retries.
// A failure comes back as *types.ActionError; a dry run or a SkipError
// from op comes back as *SkipError.
func (e *Engine) Apply(ctx context.Context, target types.Target, verb types.Verb, op Op) error {
	if e.options.DryRun {
		e.logger.WithContext(ctx).Info().
			Str("verb", string(verb)).
			Str("resource", target.Name()).
			Msg("dry run, would apply")
		return Skip("dry run")
	}

	err := op(ctx, target)
	if err == nil {
		return nil
	}

	var skip *SkipError
	if errors.As(err, &skip) {
		return skip
	}
	return &types.ActionError{
		Family:   e.family,
		Resource: target.Name(),
		Verb:     verb,
		Err:      err,
	}
}

// ApplyAll calls Apply for every target in order. One target's failure
// never prevents the others from being attempted.
func (e *Engine) ApplyAll(ctx context.Context, targets []types.Target, verb types.Verb, op Op) *ExecutionResult {
	result := &ExecutionResult{StartTime: time.Now()}
	span := telemetrySpan(ctx)

	for _, target := range targets {
		result.Attempted++
		err := e.Apply(ctx, target, verb, op)

		var skip *SkipError
		var actionErr *types.ActionError
		switch {
		case err == nil:
			result.Succeeded = append(result.Succeeded, target.Name())
			e.record(ctx, verb, StatusSuccess)
			telemetry.RecordActionEvent(span, e.family.String(), string(verb), target.Name(), telemetry.StatusSuccess, "")
			e.logger.WithContext(ctx).Info().
				Str("verb", string(verb)).
				Str("resource", target.Name()).
				Msg("applied")
		case errors.As(err, &skip):
			result.Skipped = append(result.Skipped, target.Name())
			e.record(ctx, verb, StatusSkipped)
			telemetry.RecordSkipEvent(span, e.family.String(), target.Name(), skip.Reason)
		case errors.As(err, &actionErr):
			result.Failed = append(result.Failed, actionErr)
			e.record(ctx, verb, StatusFailed)
			telemetry.RecordActionEvent(span, e.family.String(), string(verb), target.Name(), telemetry.StatusFailed, actionErr.Err.Error())
			e.logger.LogActionFailed(ctx, actionErr)
		}
	}

	result.Duration = time.Since(result.StartTime)
	return result
}

// Skip adds target to result as left untouched before any call, e.g. an
// instance owned by a scaling group.
func (e *Engine) Skip(ctx context.Context, result *ExecutionResult, target types.Target, verb types.Verb, reason string) {
	result.Skipped = append(result.Skipped, target.Name())
	e.record(ctx, verb, StatusSkipped)
	telemetry.RecordSkipEvent(telemetrySpan(ctx), e.family.String(), target.Name(), reason)
	e.logger.WithContext(ctx).Info().
		Str("verb", string(verb)).
		Str("resource", target.Name()).
		Str("reason", reason).
		Msg("skipped")
}

// Fail adds target to result as failed before its action call, e.g. when
// the ownership check for an instance could not be made.
func (e *Engine) Fail(ctx context.Context, result *ExecutionResult, target types.Target, verb types.Verb, err error) {
	actionErr := &types.ActionError{
		Family:   e.family,
		Resource: target.Name(),
		Verb:     verb,
		Err:      err,
	}
	result.Attempted++
	result.Failed = append(result.Failed, actionErr)
	e.record(ctx, verb, StatusFailed)
	telemetry.RecordActionEvent(telemetrySpan(ctx), e.family.String(), string(verb), target.Name(), telemetry.StatusFailed, err.Error())
	e.logger.LogActionFailed(ctx, actionErr)
}

func (e *Engine) record(ctx context.Context, verb types.Verb, status ExecutionStatus) {
	e.telemetry.RecordAction(ctx, e.region, e.family.String(), string(verb), string(status))
}
