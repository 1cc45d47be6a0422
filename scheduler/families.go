package scheduler

import (
	"context"

	"github.com/yairfalse/nightshift/pkg/arn"
	"github.com/yairfalse/nightshift/types"
)

// Op is an Actuator method expression, e.g. Actuator.StopInstance.
type Op func(a Actuator, ctx context.Context, t types.Target) error

// Hierarchy describes a controller that owns members. Stop freezes the
// controller then stops members; start reverses the order and waits for
// members to reach ReadyState before thawing.
type Hierarchy struct {
	MemberVerbs types.VerbPair
	StopMember  Op
	StartMember Op
	ReadyState  string
}

// Descriptor is the data-driven contract of one family.
type Descriptor struct {
	Family types.Family
	// ResourceType is the tagging lookup type. Empty for families found
	// through their own API (scaling groups).
	ResourceType string
	Verbs        types.VerbPair
	Stop         Op
	Start        Op
	// Target derives call identifiers from a discovered identifier.
	Target func(id string) types.Target
	// SkipGroupMembers leaves instances owned by a scaling group alone.
	SkipGroupMembers bool
	Hierarchy        *Hierarchy
}

// Op returns the operation implementing action.
func (d Descriptor) Op(action types.ScheduleAction) Op {
	if action == types.ActionStart {
		return d.Start
	}
	return d.Stop
}

var stopStart = types.VerbPair{Stop: types.VerbStop, Start: types.VerbStart}

var descriptors = []Descriptor{
	{
		Family:           types.FamilyEC2Instance,
		ResourceType:     "ec2:instance",
		Verbs:            stopStart,
		Stop:             Actuator.StopInstance,
		Start:            Actuator.StartInstance,
		Target:           lastSegment('/'),
		SkipGroupMembers: true,
	},
	{
		Family: types.FamilyAutoScalingGroup,
		Verbs:  types.VerbPair{Stop: types.VerbSuspend, Start: types.VerbResume},
		Stop:   Actuator.SuspendGroup,
		Start:  Actuator.ResumeGroup,
		Target: func(name string) types.Target { return types.Target{ARN: name, ID: name} },
		Hierarchy: &Hierarchy{
			MemberVerbs: stopStart,
			StopMember:  Actuator.StopInstance,
			StartMember: Actuator.StartInstance,
			ReadyState:  "running",
		},
	},
	{
		Family:       types.FamilyAppRunnerService,
		ResourceType: "apprunner:service",
		Verbs:        types.VerbPair{Stop: types.VerbPause, Start: types.VerbResume},
		Stop:         Actuator.PauseAppRunner,
		Start:        Actuator.ResumeAppRunner,
		Target: func(a string) types.Target {
			return types.Target{ARN: a, ID: arn.SecondToLast(a, '/')}
		},
	},
	{
		Family:       types.FamilyCloudWatchAlarm,
		ResourceType: "cloudwatch:alarm",
		Verbs:        types.VerbPair{Stop: types.VerbDisable, Start: types.VerbEnable},
		Stop:         Actuator.DisableAlarm,
		Start:        Actuator.EnableAlarm,
		Target: func(a string) types.Target {
			return types.Target{ARN: a, ID: arn.AfterType(a, ':')}
		},
	},
	{
		Family:       types.FamilyDocumentDBCluster,
		ResourceType: "rds:cluster",
		Verbs:        stopStart,
		Stop:         Actuator.StopDocDBCluster,
		Start:        Actuator.StartDocDBCluster,
		Target:       lastSegment(':'),
	},
	{
		Family:       types.FamilyECSService,
		ResourceType: "ecs:service",
		Verbs:        types.VerbPair{Stop: types.VerbScaleIn, Start: types.VerbScaleOut},
		Stop:         Actuator.ScaleInService,
		Start:        Actuator.ScaleOutService,
		Target: func(a string) types.Target {
			cluster, service := arn.LastPair(a, '/')
			return types.Target{ARN: a, ID: service, Parent: cluster}
		},
	},
	{
		Family:       types.FamilyRDSCluster,
		ResourceType: "rds:cluster",
		Verbs:        stopStart,
		Stop:         Actuator.StopRDSCluster,
		Start:        Actuator.StartRDSCluster,
		Target:       lastSegment(':'),
	},
	{
		Family:       types.FamilyRDSInstance,
		ResourceType: "rds:db",
		Verbs:        stopStart,
		Stop:         Actuator.StopRDSInstance,
		Start:        Actuator.StartRDSInstance,
		Target:       lastSegment(':'),
	},
	{
		Family:       types.FamilyRedshiftCluster,
		ResourceType: "redshift:cluster",
		Verbs:        types.VerbPair{Stop: types.VerbPause, Start: types.VerbResume},
		Stop:         Actuator.PauseRedshift,
		Start:        Actuator.ResumeRedshift,
		Target:       lastSegment(':'),
	},
	{
		Family:       types.FamilyTransferServer,
		ResourceType: "transfer:server",
		Verbs:        stopStart,
		Stop:         Actuator.StopTransferServer,
		Start:        Actuator.StartTransferServer,
		Target:       lastSegment('/'),
	},
}

func lastSegment(sep byte) func(string) types.Target {
	return func(a string) types.Target {
		return types.Target{ARN: a, ID: arn.Last(a, sep)}
	}
}

// Descriptors returns every family descriptor in processing order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor of f.
func Lookup(f types.Family) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Family == f {
			return d, true
		}
	}
	return Descriptor{}, false
}
