package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/yairfalse/nightshift/types"
)

// describeStatusBatch is the most instance ids DescribeInstanceStatus
// accepts in one request.
const describeStatusBatch = 100

// InstanceStateRunning is the EC2 state the start path waits for.
const InstanceStateRunning = "running"

// InstanceStates returns the EC2 state name of each id, including
// instances that are not running.
func (a *Actions) InstanceStates(ctx context.Context, ids []string) (map[string]string, error) {
	states := make(map[string]string, len(ids))

	for start := 0; start < len(ids); start += describeStatusBatch {
		end := min(start+describeStatusBatch, len(ids))
		input := &ec2.DescribeInstanceStatusInput{
			InstanceIds:         ids[start:end],
			IncludeAllInstances: aws.Bool(true),
		}

		for {
			output, err := a.clients.EC2.DescribeInstanceStatus(ctx, input)
			if err != nil {
				return nil, &types.DiscoveryError{
					Op:           "describe instance status",
					Region:       a.clients.Region,
					ResourceType: "ec2:instance",
					Err:          err,
				}
			}

			for _, status := range output.InstanceStatuses {
				if status.InstanceState == nil {
					continue
				}
				states[aws.ToString(status.InstanceId)] = string(status.InstanceState.Name)
			}

			if aws.ToString(output.NextToken) == "" {
				break
			}
			input.NextToken = output.NextToken
		}
	}

	return states, nil
}
