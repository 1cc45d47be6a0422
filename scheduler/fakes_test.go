package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yairfalse/nightshift/types"
)

// fakeActuator records every call as "Method:id" and fails the ones listed
// in fail.
type fakeActuator struct {
	calls   []string
	targets []types.Target
	fail    map[string]error
}

func (f *fakeActuator) do(method string, t types.Target) error {
	key := method + ":" + t.ID
	f.calls = append(f.calls, key)
	f.targets = append(f.targets, t)
	if err, ok := f.fail[key]; ok {
		return err
	}
	return nil
}

func (f *fakeActuator) StopInstance(ctx context.Context, t types.Target) error {
	return f.do("StopInstance", t)
}

func (f *fakeActuator) StartInstance(ctx context.Context, t types.Target) error {
	return f.do("StartInstance", t)
}

func (f *fakeActuator) SuspendGroup(ctx context.Context, t types.Target) error {
	return f.do("SuspendGroup", t)
}

func (f *fakeActuator) ResumeGroup(ctx context.Context, t types.Target) error {
	return f.do("ResumeGroup", t)
}

func (f *fakeActuator) PauseAppRunner(ctx context.Context, t types.Target) error {
	return f.do("PauseAppRunner", t)
}

func (f *fakeActuator) ResumeAppRunner(ctx context.Context, t types.Target) error {
	return f.do("ResumeAppRunner", t)
}

func (f *fakeActuator) DisableAlarm(ctx context.Context, t types.Target) error {
	return f.do("DisableAlarm", t)
}

func (f *fakeActuator) EnableAlarm(ctx context.Context, t types.Target) error {
	return f.do("EnableAlarm", t)
}

func (f *fakeActuator) StopDocDBCluster(ctx context.Context, t types.Target) error {
	return f.do("StopDocDBCluster", t)
}

func (f *fakeActuator) StartDocDBCluster(ctx context.Context, t types.Target) error {
	return f.do("StartDocDBCluster", t)
}

func (f *fakeActuator) ScaleInService(ctx context.Context, t types.Target) error {
	return f.do("ScaleInService", t)
}

func (f *fakeActuator) ScaleOutService(ctx context.Context, t types.Target) error {
	return f.do("ScaleOutService", t)
}

func (f *fakeActuator) StopRDSCluster(ctx context.Context, t types.Target) error {
	return f.do("StopRDSCluster", t)
}

func (f *fakeActuator) StartRDSCluster(ctx context.Context, t types.Target) error {
	return f.do("StartRDSCluster", t)
}

func (f *fakeActuator) StopRDSInstance(ctx context.Context, t types.Target) error {
	return f.do("StopRDSInstance", t)
}

func (f *fakeActuator) StartRDSInstance(ctx context.Context, t types.Target) error {
	return f.do("StartRDSInstance", t)
}

func (f *fakeActuator) PauseRedshift(ctx context.Context, t types.Target) error {
	return f.do("PauseRedshift", t)
}

func (f *fakeActuator) ResumeRedshift(ctx context.Context, t types.Target) error {
	return f.do("ResumeRedshift", t)
}

func (f *fakeActuator) StopTransferServer(ctx context.Context, t types.Target) error {
	return f.do("StopTransferServer", t)
}

func (f *fakeActuator) StartTransferServer(ctx context.Context, t types.Target) error {
	return f.do("StartTransferServer", t)
}

// fakeLocator serves fixed identifiers per resource type.
type fakeLocator struct {
	ids   map[string][]string
	err   error
	calls []string
}

func (l *fakeLocator) Locate(ctx context.Context, resourceType string, filter types.TagFilter) (*types.IDSet, error) {
	l.calls = append(l.calls, resourceType)
	if l.err != nil {
		return nil, l.err
	}
	return types.NewIDSet(l.ids[resourceType]...), nil
}

// fakeGroups models scaling groups and their members.
type fakeGroups struct {
	members     map[string][]string
	tagged      []string
	groupsErr   error
	expandErr   error
	ownerFail   map[string]error
	expandCalls []*types.IDSet
}

func (g *fakeGroups) GroupsByTag(ctx context.Context, filter types.TagFilter) (*types.IDSet, error) {
	if g.groupsErr != nil {
		return nil, g.groupsErr
	}
	return types.NewIDSet(g.tagged...), nil
}

func (g *fakeGroups) ExpandMembers(ctx context.Context, groups *types.IDSet) (*types.IDSet, error) {
	g.expandCalls = append(g.expandCalls, groups)
	if g.expandErr != nil {
		return nil, g.expandErr
	}
	out := types.NewIDSet()
	for _, name := range groups.Items() {
		for _, id := range g.members[name] {
			out.Add(id)
		}
	}
	return out, nil
}

func (g *fakeGroups) OwnerOf(ctx context.Context, instanceID string) (string, bool, error) {
	if err := g.ownerFail[instanceID]; err != nil {
		return "", false, err
	}
	names := make([]string, 0, len(g.members))
	for name := range g.members {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, id := range g.members[name] {
			if id == instanceID {
				return name, true, nil
			}
		}
	}
	return "", false, nil
}

// fakeStates reports every queried id as running after readyAfter calls.
type fakeStates struct {
	readyAfter int
	calls      int
	err        error
	queried    [][]string
}

func (s *fakeStates) InstanceStates(ctx context.Context, ids []string) (map[string]string, error) {
	s.calls++
	s.queried = append(s.queried, ids)
	if s.err != nil {
		return nil, s.err
	}
	state := "pending"
	if s.calls >= s.readyAfter {
		state = "running"
	}
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		out[id] = state
	}
	return out, nil
}

var errBoom = errors.New("boom")

func ec2ARN(id string) string {
	return fmt.Sprintf("arn:aws:ec2:us-east-1:123456789012:instance/%s", id)
}
