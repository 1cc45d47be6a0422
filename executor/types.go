package executor

import (
	"context"
	"time"

	"github.com/yairfalse/nightshift/types"
)

// Op performs exactly one state-changing call for target.
type Op func(ctx context.Context, target types.Target) error

// ExecutionStatus is the outcome of a single apply
type ExecutionStatus string

const (
	StatusSuccess ExecutionStatus = "success"
	StatusFailed  ExecutionStatus = "failed"
	StatusSkipped ExecutionStatus = "skipped"
)

// ExecutionResult contains the outcome of applying one verb to a batch
type ExecutionResult struct {
	StartTime time.Time
	Duration  time.Duration
	Attempted int
	Succeeded []string
	Failed    []*types.ActionError
	Skipped   []string
}

// SuccessfulCount returns the number of resources acted on.
func (r *ExecutionResult) SuccessfulCount() int { return len(r.Succeeded) }

// FailedCount returns the number of failed calls.
func (r *ExecutionResult) FailedCount() int { return len(r.Failed) }

// SkippedCount returns the number of resources left untouched.
func (r *ExecutionResult) SkippedCount() int { return len(r.Skipped) }

// Merge folds other into r.
func (r *ExecutionResult) Merge(other *ExecutionResult) {
	if other == nil {
		return
	}
	if r.StartTime.IsZero() {
		r.StartTime = other.StartTime
	}
	r.Duration += other.Duration
	r.Attempted += other.Attempted
	r.Succeeded = append(r.Succeeded, other.Succeeded...)
	r.Failed = append(r.Failed, other.Failed...)
	r.Skipped = append(r.Skipped, other.Skipped...)
}

// SucceededSet returns the identifiers acted on as a set.
func (r *ExecutionResult) SucceededSet() *types.IDSet {
	return types.NewIDSet(r.Succeeded...)
}

// SkipError marks a resource as deliberately left untouched.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return "skipped: " + e.Reason
}

// Skip returns a SkipError for reason.
func Skip(reason string) error {
	return &SkipError{Reason: reason}
}
