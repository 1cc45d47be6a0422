package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/yairfalse/nightshift/types"
)

// maxGroupNames is the AutoScalingGroupNames limit of one describe call.
const maxGroupNames = 50

// GroupResolver answers scaling group questions: which groups carry a tag,
// which instances they own and which group owns a given instance.
type GroupResolver struct {
	api    AutoScalingAPI
	region string
}

// NewGroupResolver creates a resolver for one region.
func NewGroupResolver(api AutoScalingAPI, region string) *GroupResolver {
	return &GroupResolver{api: api, region: region}
}

// GroupsByTag returns the names of scaling groups tagged with filter.
func (r *GroupResolver) GroupsByTag(ctx context.Context, filter types.TagFilter) (*types.IDSet, error) {
	groups := types.NewIDSet()
	input := &autoscaling.DescribeAutoScalingGroupsInput{
		Filters: []asgtypes.Filter{{
			Name:   aws.String("tag:" + filter.Key),
			Values: []string{filter.Value},
		}},
	}

	err := r.describeGroups(ctx, input, func(group asgtypes.AutoScalingGroup) {
		groups.Add(aws.ToString(group.AutoScalingGroupName))
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ExpandMembers returns the union of instance ids owned by groups.
// An empty group set returns an empty result without calling the API.
func (r *GroupResolver) ExpandMembers(ctx context.Context, groups *types.IDSet) (*types.IDSet, error) {
	members := types.NewIDSet()
	if groups.Len() == 0 {
		return members, nil
	}

	names := groups.Items()
	for start := 0; start < len(names); start += maxGroupNames {
		input := &autoscaling.DescribeAutoScalingGroupsInput{
			AutoScalingGroupNames: names[start:min(start+maxGroupNames, len(names))],
		}
		err := r.describeGroups(ctx, input, func(group asgtypes.AutoScalingGroup) {
			for _, instance := range group.Instances {
				members.Add(aws.ToString(instance.InstanceId))
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return members, nil
}

// OwnerOf returns the scaling group owning instanceID. ok is false when the
// instance is managed independently.
func (r *GroupResolver) OwnerOf(ctx context.Context, instanceID string) (group string, ok bool, err error) {
	if instanceID == "" {
		return "", false, nil
	}

	output, err := r.api.DescribeAutoScalingInstances(ctx, &autoscaling.DescribeAutoScalingInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return "", false, &types.DiscoveryError{
			Op:     "describe auto scaling instance " + instanceID,
			Region: r.region,
			Err:    err,
		}
	}

	for _, detail := range output.AutoScalingInstances {
		if aws.ToString(detail.InstanceId) != instanceID {
			continue
		}
		if name := aws.ToString(detail.AutoScalingGroupName); name != "" {
			return name, true, nil
		}
	}
	return "", false, nil
}

func (r *GroupResolver) describeGroups(ctx context.Context, input *autoscaling.DescribeAutoScalingGroupsInput, visit func(asgtypes.AutoScalingGroup)) error {
	for {
		output, err := r.api.DescribeAutoScalingGroups(ctx, input)
		if err != nil {
			return &types.DiscoveryError{
				Op:           "describe auto scaling groups",
				Region:       r.region,
				ResourceType: "autoscaling:autoScalingGroup",
				Err:          err,
			}
		}

		for _, group := range output.AutoScalingGroups {
			visit(group)
		}

		if aws.ToString(output.NextToken) == "" {
			return nil
		}
		input.NextToken = output.NextToken
	}
}
