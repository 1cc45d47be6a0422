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

// recorder collects the inputs every mock receives, keyed by operation.
type recorder struct {
	inputs map[string][]any
}

func (r *recorder) record(op string, input any) {
	if r.inputs == nil {
		r.inputs = map[string][]any{}
	}
	r.inputs[op] = append(r.inputs[op], input)
}

// mockEC2Client implements the EC2 interfaces for testing.
type mockEC2Client struct {
	recorder
	StopInstancesFunc          func(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	StartInstancesFunc         func(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	DescribeInstanceStatusFunc func(ctx context.Context, params *ec2.DescribeInstanceStatusInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceStatusOutput, error)
}

func (m *mockEC2Client) StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	m.record("StopInstances", params)
	if m.StopInstancesFunc != nil {
		return m.StopInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.StopInstancesOutput{}, nil
}

func (m *mockEC2Client) StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error) {
	m.record("StartInstances", params)
	if m.StartInstancesFunc != nil {
		return m.StartInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.StartInstancesOutput{}, nil
}

func (m *mockEC2Client) DescribeInstanceStatus(ctx context.Context, params *ec2.DescribeInstanceStatusInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceStatusOutput, error) {
	m.record("DescribeInstanceStatus", params)
	if m.DescribeInstanceStatusFunc != nil {
		return m.DescribeInstanceStatusFunc(ctx, params, optFns...)
	}
	return &ec2.DescribeInstanceStatusOutput{}, nil
}

// mockAutoScalingClient implements the AutoScaling interfaces for testing.
type mockAutoScalingClient struct {
	recorder
	SuspendProcessesFunc             func(ctx context.Context, params *autoscaling.SuspendProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.SuspendProcessesOutput, error)
	ResumeProcessesFunc              func(ctx context.Context, params *autoscaling.ResumeProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.ResumeProcessesOutput, error)
	DescribeAutoScalingGroupsFunc    func(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
	DescribeAutoScalingInstancesFunc func(ctx context.Context, params *autoscaling.DescribeAutoScalingInstancesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingInstancesOutput, error)
}

func (m *mockAutoScalingClient) SuspendProcesses(ctx context.Context, params *autoscaling.SuspendProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.SuspendProcessesOutput, error) {
	m.record("SuspendProcesses", params)
	if m.SuspendProcessesFunc != nil {
		return m.SuspendProcessesFunc(ctx, params, optFns...)
	}
	return &autoscaling.SuspendProcessesOutput{}, nil
}

func (m *mockAutoScalingClient) ResumeProcesses(ctx context.Context, params *autoscaling.ResumeProcessesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.ResumeProcessesOutput, error) {
	m.record("ResumeProcesses", params)
	if m.ResumeProcessesFunc != nil {
		return m.ResumeProcessesFunc(ctx, params, optFns...)
	}
	return &autoscaling.ResumeProcessesOutput{}, nil
}

func (m *mockAutoScalingClient) DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	m.record("DescribeAutoScalingGroups", params)
	if m.DescribeAutoScalingGroupsFunc != nil {
		return m.DescribeAutoScalingGroupsFunc(ctx, params, optFns...)
	}
	return &autoscaling.DescribeAutoScalingGroupsOutput{}, nil
}

func (m *mockAutoScalingClient) DescribeAutoScalingInstances(ctx context.Context, params *autoscaling.DescribeAutoScalingInstancesInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingInstancesOutput, error) {
	m.record("DescribeAutoScalingInstances", params)
	if m.DescribeAutoScalingInstancesFunc != nil {
		return m.DescribeAutoScalingInstancesFunc(ctx, params, optFns...)
	}
	return &autoscaling.DescribeAutoScalingInstancesOutput{}, nil
}

// mockAppRunnerClient implements the AppRunner interfaces for testing.
type mockAppRunnerClient struct {
	recorder
	PauseServiceFunc  func(ctx context.Context, params *apprunner.PauseServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.PauseServiceOutput, error)
	ResumeServiceFunc func(ctx context.Context, params *apprunner.ResumeServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.ResumeServiceOutput, error)
}

func (m *mockAppRunnerClient) PauseService(ctx context.Context, params *apprunner.PauseServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.PauseServiceOutput, error) {
	m.record("PauseService", params)
	if m.PauseServiceFunc != nil {
		return m.PauseServiceFunc(ctx, params, optFns...)
	}
	return &apprunner.PauseServiceOutput{}, nil
}

func (m *mockAppRunnerClient) ResumeService(ctx context.Context, params *apprunner.ResumeServiceInput, optFns ...func(*apprunner.Options)) (*apprunner.ResumeServiceOutput, error) {
	m.record("ResumeService", params)
	if m.ResumeServiceFunc != nil {
		return m.ResumeServiceFunc(ctx, params, optFns...)
	}
	return &apprunner.ResumeServiceOutput{}, nil
}

// mockCloudWatchClient implements the CloudWatch interfaces for testing.
type mockCloudWatchClient struct {
	recorder
	DisableAlarmActionsFunc func(ctx context.Context, params *cloudwatch.DisableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DisableAlarmActionsOutput, error)
	EnableAlarmActionsFunc  func(ctx context.Context, params *cloudwatch.EnableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.EnableAlarmActionsOutput, error)
}

func (m *mockCloudWatchClient) DisableAlarmActions(ctx context.Context, params *cloudwatch.DisableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.DisableAlarmActionsOutput, error) {
	m.record("DisableAlarmActions", params)
	if m.DisableAlarmActionsFunc != nil {
		return m.DisableAlarmActionsFunc(ctx, params, optFns...)
	}
	return &cloudwatch.DisableAlarmActionsOutput{}, nil
}

func (m *mockCloudWatchClient) EnableAlarmActions(ctx context.Context, params *cloudwatch.EnableAlarmActionsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.EnableAlarmActionsOutput, error) {
	m.record("EnableAlarmActions", params)
	if m.EnableAlarmActionsFunc != nil {
		return m.EnableAlarmActionsFunc(ctx, params, optFns...)
	}
	return &cloudwatch.EnableAlarmActionsOutput{}, nil
}

// mockDocDBClient implements the DocDB interfaces for testing.
type mockDocDBClient struct {
	recorder
	StopDBClusterFunc  func(ctx context.Context, params *docdb.StopDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StopDBClusterOutput, error)
	StartDBClusterFunc func(ctx context.Context, params *docdb.StartDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StartDBClusterOutput, error)
}

func (m *mockDocDBClient) StopDBCluster(ctx context.Context, params *docdb.StopDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StopDBClusterOutput, error) {
	m.record("StopDBCluster", params)
	if m.StopDBClusterFunc != nil {
		return m.StopDBClusterFunc(ctx, params, optFns...)
	}
	return &docdb.StopDBClusterOutput{}, nil
}

func (m *mockDocDBClient) StartDBCluster(ctx context.Context, params *docdb.StartDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.StartDBClusterOutput, error) {
	m.record("StartDBCluster", params)
	if m.StartDBClusterFunc != nil {
		return m.StartDBClusterFunc(ctx, params, optFns...)
	}
	return &docdb.StartDBClusterOutput{}, nil
}

// mockECSClient implements the ECS interfaces for testing.
type mockECSClient struct {
	recorder
	UpdateServiceFunc func(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
}

func (m *mockECSClient) UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	m.record("UpdateService", params)
	if m.UpdateServiceFunc != nil {
		return m.UpdateServiceFunc(ctx, params, optFns...)
	}
	return &ecs.UpdateServiceOutput{}, nil
}

// mockRDSClient implements the RDS interfaces for testing.
type mockRDSClient struct {
	recorder
	StopDBInstanceFunc  func(ctx context.Context, params *rds.StopDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StopDBInstanceOutput, error)
	StartDBInstanceFunc func(ctx context.Context, params *rds.StartDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StartDBInstanceOutput, error)
	StopDBClusterFunc   func(ctx context.Context, params *rds.StopDBClusterInput, optFns ...func(*rds.Options)) (*rds.StopDBClusterOutput, error)
	StartDBClusterFunc  func(ctx context.Context, params *rds.StartDBClusterInput, optFns ...func(*rds.Options)) (*rds.StartDBClusterOutput, error)
}

func (m *mockRDSClient) StopDBInstance(ctx context.Context, params *rds.StopDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StopDBInstanceOutput, error) {
	m.record("StopDBInstance", params)
	if m.StopDBInstanceFunc != nil {
		return m.StopDBInstanceFunc(ctx, params, optFns...)
	}
	return &rds.StopDBInstanceOutput{}, nil
}

func (m *mockRDSClient) StartDBInstance(ctx context.Context, params *rds.StartDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StartDBInstanceOutput, error) {
	m.record("StartDBInstance", params)
	if m.StartDBInstanceFunc != nil {
		return m.StartDBInstanceFunc(ctx, params, optFns...)
	}
	return &rds.StartDBInstanceOutput{}, nil
}

func (m *mockRDSClient) StopDBCluster(ctx context.Context, params *rds.StopDBClusterInput, optFns ...func(*rds.Options)) (*rds.StopDBClusterOutput, error) {
	m.record("StopDBCluster", params)
	if m.StopDBClusterFunc != nil {
		return m.StopDBClusterFunc(ctx, params, optFns...)
	}
	return &rds.StopDBClusterOutput{}, nil
}

func (m *mockRDSClient) StartDBCluster(ctx context.Context, params *rds.StartDBClusterInput, optFns ...func(*rds.Options)) (*rds.StartDBClusterOutput, error) {
	m.record("StartDBCluster", params)
	if m.StartDBClusterFunc != nil {
		return m.StartDBClusterFunc(ctx, params, optFns...)
	}
	return &rds.StartDBClusterOutput{}, nil
}

// mockRedshiftClient implements the Redshift interfaces for testing.
type mockRedshiftClient struct {
	recorder
	PauseClusterFunc  func(ctx context.Context, params *redshift.PauseClusterInput, optFns ...func(*redshift.Options)) (*redshift.PauseClusterOutput, error)
	ResumeClusterFunc func(ctx context.Context, params *redshift.ResumeClusterInput, optFns ...func(*redshift.Options)) (*redshift.ResumeClusterOutput, error)
}

func (m *mockRedshiftClient) PauseCluster(ctx context.Context, params *redshift.PauseClusterInput, optFns ...func(*redshift.Options)) (*redshift.PauseClusterOutput, error) {
	m.record("PauseCluster", params)
	if m.PauseClusterFunc != nil {
		return m.PauseClusterFunc(ctx, params, optFns...)
	}
	return &redshift.PauseClusterOutput{}, nil
}

func (m *mockRedshiftClient) ResumeCluster(ctx context.Context, params *redshift.ResumeClusterInput, optFns ...func(*redshift.Options)) (*redshift.ResumeClusterOutput, error) {
	m.record("ResumeCluster", params)
	if m.ResumeClusterFunc != nil {
		return m.ResumeClusterFunc(ctx, params, optFns...)
	}
	return &redshift.ResumeClusterOutput{}, nil
}

// mockTransferClient implements the Transfer interfaces for testing.
type mockTransferClient struct {
	recorder
	StopServerFunc  func(ctx context.Context, params *transfer.StopServerInput, optFns ...func(*transfer.Options)) (*transfer.StopServerOutput, error)
	StartServerFunc func(ctx context.Context, params *transfer.StartServerInput, optFns ...func(*transfer.Options)) (*transfer.StartServerOutput, error)
}

func (m *mockTransferClient) StopServer(ctx context.Context, params *transfer.StopServerInput, optFns ...func(*transfer.Options)) (*transfer.StopServerOutput, error) {
	m.record("StopServer", params)
	if m.StopServerFunc != nil {
		return m.StopServerFunc(ctx, params, optFns...)
	}
	return &transfer.StopServerOutput{}, nil
}

func (m *mockTransferClient) StartServer(ctx context.Context, params *transfer.StartServerInput, optFns ...func(*transfer.Options)) (*transfer.StartServerOutput, error) {
	m.record("StartServer", params)
	if m.StartServerFunc != nil {
		return m.StartServerFunc(ctx, params, optFns...)
	}
	return &transfer.StartServerOutput{}, nil
}
