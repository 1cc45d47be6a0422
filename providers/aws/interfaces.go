package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/apprunner"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
)

// EC2API defines the EC2 operations used by the actions.
type EC2API interface {
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	DescribeInstanceStatus(ctx context.Context, params *ec2.DescribeInstanceStatusInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceStatusOutput, error)
}

// AutoScalingAPI defines the scaling process operations.
type AutoScalingAPI interface {
	SuspendProcesses(ctx context.Context, params *autoscaling.SuspendProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.SuspendProcessesOutput, error)
	ResumeProcesses(ctx context.Context, params *autoscaling.ResumeProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.ResumeProcessesOutput, error)
}

// AppRunnerAPI defines the App Runner operations.
type AppRunnerAPI interface {
	PauseService(ctx context.Context, params *apprunner.PauseServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.PauseServiceOutput, error)
	ResumeService(ctx context.Context, params *apprunner.ResumeServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.ResumeServiceOutput, error)
}

// CloudWatchAPI defines the alarm action toggles.
type CloudWatchAPI interface {
	DisableAlarmActions(ctx context.Context, params *cloudwatch.DisableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DisableAlarmActionsOutput, error)
	EnableAlarmActions(ctx context.Context, params *cloudwatch.EnableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.EnableAlarmActionsOutput, error)
}

// DocDBAPI defines the DocumentDB cluster operations.
type DocDBAPI interface {
	StopDBCluster(ctx context.Context, params *docdb.StopDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StopDBClusterOutput, error)
	StartDBCluster(ctx context.Context, params *docdb.StartDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StartDBClusterOutput, error)
}

// ECSAPI defines the ECS operations.
type ECSAPI interface {
	UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
}

// RDSAPI defines the RDS instance and cluster operations.
type RDSAPI interface {
	StopDBInstance(ctx context.Context, params *rds.StopDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StopDBInstanceOutput, error)
	StartDBInstance(ctx context.Context, params *rds.StartDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StartDBInstanceOutput, error)
	StopDBCluster(ctx context.Context, params *rds.StopDBClusterInput, optFns ...func(*rds.Options)) (*rds.StopDBClusterOutput, error)
	StartDBCluster(ctx context.Context, params *rds.StartDBClusterInput, optFns ...func(*rds.Options)) (*rds.StartDBClusterOutput, error)
}

// RedshiftAPI defines the Redshift operations.
type RedshiftAPI interface {
	PauseCluster(ctx context.Context, params *redshift.PauseClusterInput, optFns ...func(*redshift.Options)) (*redshift.PauseClusterOutput, error)
	ResumeCluster(ctx context.Context, params *redshift.ResumeClusterInput, optFns ...func(*redshift.Options)) (*redshift.ResumeClusterOutput, error)
}

// TransferAPI defines the Transfer Family operations.
type TransferAPI interface {
	StopServer(ctx context.Context, params *transfer.StopServerInput, optFns ...func(*transfer.Options)) (*transfer.StopServerOutput, error)
	StartServer(ctx context.Context, params *transfer.StartServerInput, optFns ...func(*transfer.Options)) (*transfer.StartServerOutput, error)
}
