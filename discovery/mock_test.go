package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
)

// mockTaggingClient implements TaggingAPI for testing.
type mockTaggingClient struct {
	GetResourcesFunc func(ctx context.Context, params *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error)
	calls            int
}

func (m *mockTaggingClient) GetResources(ctx context.Context, params *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error) {
	m.calls++
	if m.GetResourcesFunc != nil {
		return m.GetResourcesFunc(ctx, params, optFns...)
	}
	return &resourcegroupstaggingapi.GetResourcesOutput{}, nil
}

// mockAutoScalingClient implements AutoScalingAPI for testing.
type mockAutoScalingClient struct {
	DescribeAutoScalingGroupsFunc    func(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
	DescribeAutoScalingInstancesFunc func(ctx context.Context, params *autoscaling.DescribeAutoScalingInstancesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingInstancesOutput, error)
	groupCalls                       int
	instanceCalls                    int
}

func (m *mockAutoScalingClient) DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	m.groupCalls++
	if m.DescribeAutoScalingGroupsFunc != nil {
		return m.DescribeAutoScalingGroupsFunc(ctx, params, optFns...)
	}
	return &autoscaling.DescribeAutoScalingGroupsOutput{}, nil
}

func (m *mockAutoScalingClient) DescribeAutoScalingInstances(ctx context.Context, params *autoscaling.DescribeAutoScalingInstancesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingInstancesOutput, error) {
	m.instanceCalls++
	if m.DescribeAutoScalingInstancesFunc != nil {
		return m.DescribeAutoScalingInstancesFunc(ctx, params, optFns...)
	}
	return &autoscaling.DescribeAutoScalingInstancesOutput{}, nil
}
