// Package aws binds the scheduler to the AWS SDK.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apprunner"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/transfer"

	"github.com/yairfalse/nightshift/discovery"
)

// GroupAPI is the scaling group client used for both lookups and
// process suspension.
type GroupAPI interface {
	discovery.AutoScalingAPI
	AutoScalingAPI
}

// Clients holds the service clients for one region.
type Clients struct {
	Region      string
	Tagging     discovery.TaggingAPI
	AutoScaling GroupAPI
	EC2         EC2API
	AppRunner   AppRunnerAPI
	CloudWatch  CloudWatchAPI
	DocDB       DocDBAPI
	ECS         ECSAPI
	RDS         RDSAPI
	Redshift    RedshiftAPI
	Transfer    TransferAPI
}

// NewClients loads the default credential chain for region and builds
// every client. Nothing is called until a family uses its client.
func NewClients(ctx context.Context, region string) (*Clients, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for %s: %w", region, err)
	}

	return &Clients{
		Region:      region,
		Tagging:     resourcegroupstaggingapi.NewFromConfig(cfg),
		AutoScaling: autoscaling.NewFromConfig(cfg),
		EC2:         ec2.NewFromConfig(cfg),
		AppRunner:   apprunner.NewFromConfig(cfg),
		CloudWatch:  cloudwatch.NewFromConfig(cfg),
		DocDB:       docdb.NewFromConfig(cfg),
		ECS:         ecs.NewFromConfig(cfg),
		RDS:         rds.NewFromConfig(cfg),
		Redshift:    redshift.NewFromConfig(cfg),
		Transfer:    transfer.NewFromConfig(cfg),
	}, nil
}
