package scheduler

import (
	"context"

	"github.com/yairfalse/nightshift/types"
)

// Actuator performs one state-changing call per method.
type Actuator interface {
	StopInstance(ctx context.Context, t types.Target) error
	StartInstance(ctx context.Context, t types.Target) error
	SuspendGroup(ctx context.Context, t types.Target) error
	ResumeGroup(ctx context.Context, t types.Target) error
	PauseAppRunner(ctx context.Context, t types.Target) error
	ResumeAppRunner(ctx context.Context, t types.Target) error
	DisableAlarm(ctx context.Context, t types.Target) error
	EnableAlarm(ctx context.Context, t types.Target) error
	StopDocDBCluster(ctx context.Context, t types.Target) error
	StartDocDBCluster(ctx context.Context, t types.Target) error
	ScaleInService(ctx context.Context, t types.Target) error
	ScaleOutService(ctx context.Context, t types.Target) error
	StopRDSCluster(ctx context.Context, t types.Target) error
	StartRDSCluster(ctx context.Context, t types.Target) error
	StopRDSInstance(ctx context.Context, t types.Target) error
	StartRDSInstance(ctx context.Context, t types.Target) error
	PauseRedshift(ctx context.Context, t types.Target) error
	ResumeRedshift(ctx context.Context, t types.Target) error
	StopTransferServer(ctx context.Context, t types.Target) error
	StartTransferServer(ctx context.Context, t types.Target) error
}

// Locator lists tagged resources of one type.
type Locator interface {
	Locate(ctx context.Context, resourceType string, filter types.TagFilter) (*types.IDSet, error)
}

// GroupLookup resolves scaling group membership.
type GroupLookup interface {
	GroupsByTag(ctx context.Context, filter types.TagFilter) (*types.IDSet, error)
	ExpandMembers(ctx context.Context, groups *types.IDSet) (*types.IDSet, error)
	OwnerOf(ctx context.Context, instanceID string) (string, bool, error)
}

// StateQuery reports member states for the start wait.
type StateQuery interface {
	InstanceStates(ctx context.Context, ids []string) (map[string]string, error)
}

// Backend is everything a facade needs for one region.
type Backend struct {
	Region  string
	Locator Locator
	Groups  GroupLookup
	Actions Actuator
	States  StateQuery
}
