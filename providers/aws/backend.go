package aws

import (
	"context"

	"github.com/yairfalse/nightshift/discovery"
	"github.com/yairfalse/nightshift/scheduler"
)

// Backend wires clients into the scheduler's backend for one region.
func Backend(clients *Clients, ecsStartCount int32) scheduler.Backend {
	actions := NewActions(clients, ecsStartCount)
	return scheduler.Backend{
		Region:  clients.Region,
		Locator: discovery.NewLocator(clients.Tagging, clients.Region),
		Groups:  discovery.NewGroupResolver(clients.AutoScaling, clients.Region),
		Actions: actions,
		States:  actions,
	}
}

// BackendFactory returns a constructor that loads credentials per region.
func BackendFactory(ecsStartCount int32) func(ctx context.Context, region string) (scheduler.Backend, error) {
	return func(ctx context.Context, region string) (scheduler.Backend, error) {
		clients, err := NewClients(ctx, region)
		if err != nil {
			return scheduler.Backend{}, err
		}
		return Backend(clients, ecsStartCount), nil
	}
}
