package orchestrator

import (
	"context"
	"time"

	"github.com/yairfalse/nightshift/scheduler"
	"github.com/yairfalse/nightshift/types"
)

// BackendFactory builds the backend of one region.
type BackendFactory func(ctx context.Context, region string) (scheduler.Backend, error)

// Config is the run configuration the orchestrator consumes.
type Config struct {
	Action   types.ScheduleAction
	Regions  []string
	Filter   types.TagFilter
	Families []types.Family
	Calendar *types.Calendar

	DryRun            bool
	WaitMaxAttempts   int
	WaitInterval      time.Duration
	RegionConcurrency int
}

// RunResult contains the results of one invocation
type RunResult struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Action    types.ScheduleAction
	Date      string
	Excluded  bool
	Regions   []RegionResult
}

// RegionResult is the outcome of one region.
type RegionResult struct {
	Region   string
	Err      error
	Families []FamilyResult
}

// FamilyResult is the outcome of one family in one region.
type FamilyResult struct {
	Region     string
	Family     types.Family
	Discovered int
	Succeeded  int
	Failed     int
	Skipped    int
	Err        error
}

// Totals sums the family results across regions.
func (r *RunResult) Totals() FamilyResult {
	var total FamilyResult
	for _, region := range r.Regions {
		for _, f := range region.Families {
			total.Discovered += f.Discovered
			total.Succeeded += f.Succeeded
			total.Failed += f.Failed
			total.Skipped += f.Skipped
		}
	}
	return total
}

// Errors returns every contained region or family error.
func (r *RunResult) Errors() []error {
	var errs []error
	for _, region := range r.Regions {
		if region.Err != nil {
			errs = append(errs, region.Err)
		}
		for _, f := range region.Families {
			if f.Err != nil {
				errs = append(errs, f.Err)
			}
		}
	}
	return errs
}
