package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apprunner"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/transfer"

	"github.com/yairfalse/nightshift/types"
)

// DefaultECSStartCount is the desired count restored on start.
const DefaultECSStartCount int32 = 1

// Actions performs one state-changing call per method against the
// clients of one region.
type Actions struct {
	clients       *Clients
	ecsStartCount int32
}

// NewActions creates the action set. A negative ecsStartCount falls back
// to DefaultECSStartCount.
func NewActions(clients *Clients, ecsStartCount int32) *Actions {
	if ecsStartCount < 0 {
		ecsStartCount = DefaultECSStartCount
	}
	return &Actions{clients: clients, ecsStartCount: ecsStartCount}
}

// StopInstance stops one EC2 instance.
func (a *Actions) StopInstance(ctx context.Context, t types.Target) error {
	_, err := a.clients.EC2.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: []string{t.ID}})
	if err != nil {
		return fmt.Errorf("stop instance: %w", err)
	}
	return nil
}

// StartInstance starts one EC2 instance.
func (a *Actions) StartInstance(ctx context.Context, t types.Target) error {
	_, err := a.clients.EC2.StartInstances(ctx, &ec2.StartInstancesInput{InstanceIds: []string{t.ID}})
	if err != nil {
		return fmt.Errorf("start instance: %w", err)
	}
	return nil
}

// SuspendGroup suspends every scaling process of a group.
func (a *Actions) SuspendGroup(ctx context.Context, t types.Target) error {
	_, err := a.clients.AutoScaling.SuspendProcesses(ctx, &autoscaling.SuspendProcessesInput{
		AutoScalingGroupName: aws.String(t.ID),
	})
	if err != nil {
		return fmt.Errorf("suspend processes: %w", err)
	}
	return nil
}

// ResumeGroup resumes every scaling process of a group.
func (a *Actions) ResumeGroup(ctx context.Context, t types.Target) error {
	_, err := a.clients.AutoScaling.ResumeProcesses(ctx, &autoscaling.ResumeProcessesInput{
		AutoScalingGroupName: aws.String(t.ID),
	})
	if err != nil {
		return fmt.Errorf("resume processes: %w", err)
	}
	return nil
}

// PauseAppRunner pauses an App Runner service by ARN.
func (a *Actions) PauseAppRunner(ctx context.Context, t types.Target) error {
	_, err := a.clients.AppRunner.PauseService(ctx, &apprunner.PauseServiceInput{ServiceArn: aws.String(t.ARN)})
	if err != nil {
		return fmt.Errorf("pause service: %w", err)
	}
	return nil
}

// ResumeAppRunner resumes an App Runner service by ARN.
func (a *Actions) ResumeAppRunner(ctx context.Context, t types.Target) error {
	_, err := a.clients.AppRunner.ResumeService(ctx, &apprunner.ResumeServiceInput{ServiceArn: aws.String(t.ARN)})
	if err != nil {
		return fmt.Errorf("resume service: %w", err)
	}
	return nil
}

// DisableAlarm disables the actions of one alarm.
func (a *Actions) DisableAlarm(ctx context.Context, t types.Target) error {
	_, err := a.clients.CloudWatch.DisableAlarmActions(ctx, &cloudwatch.DisableAlarmActionsInput{AlarmNames: []string{t.ID}})
	if err != nil {
		return fmt.Errorf("disable alarm actions: %w", err)
	}
	return nil
}

// EnableAlarm enables the actions of one alarm.
func (a *Actions) EnableAlarm(ctx context.Context, t types.Target) error {
	_, err := a.clients.CloudWatch.EnableAlarmActions(ctx, &cloudwatch.EnableAlarmActionsInput{AlarmNames: []string{t.ID}})
	if err != nil {
		return fmt.Errorf("enable alarm actions: %w", err)
	}
	return nil
}

// StopDocDBCluster stops a DocumentDB cluster.
func (a *Actions) StopDocDBCluster(ctx context.Context, t types.Target) error {
	_, err := a.clients.DocDB.StopDBCluster(ctx, &docdb.StopDBClusterInput{DBClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("stop docdb cluster: %w", err)
	}
	return nil
}

// StartDocDBCluster starts a DocumentDB cluster.
func (a *Actions) StartDocDBCluster(ctx context.Context, t types.Target) error {
	_, err := a.clients.DocDB.StartDBCluster(ctx, &docdb.StartDBClusterInput{DBClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("start docdb cluster: %w", err)
	}
	return nil
}

// ScaleInService sets an ECS service's desired count to zero.
func (a *Actions) ScaleInService(ctx context.Context, t types.Target) error {
	return a.updateService(ctx, t, 0)
}

// ScaleOutService restores an ECS service's desired count.
func (a *Actions) ScaleOutService(ctx context.Context, t types.Target) error {
	return a.updateService(ctx, t, a.ecsStartCount)
}

func (a *Actions) updateService(ctx context.Context, t types.Target, count int32) error {
	input := &ecs.UpdateServiceInput{
		Service:      aws.String(t.ID),
		DesiredCount: aws.Int32(count),
	}
	if t.Parent != "" {
		input.Cluster = aws.String(t.Parent)
	}

	_, err := a.clients.ECS.UpdateService(ctx, input)
	if err != nil {
		return fmt.Errorf("update service desired count to %d: %w", count, err)
	}
	return nil
}

// StopRDSCluster stops an Aurora cluster.
func (a *Actions) StopRDSCluster(ctx context.Context, t types.Target) error {
	_, err := a.clients.RDS.StopDBCluster(ctx, &rds.StopDBClusterInput{DBClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("stop db cluster: %w", err)
	}
	return nil
}

// StartRDSCluster starts an Aurora cluster.
func (a *Actions) StartRDSCluster(ctx context.Context, t types.Target) error {
	_, err := a.clients.RDS.StartDBCluster(ctx, &rds.StartDBClusterInput{DBClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("start db cluster: %w", err)
	}
	return nil
}

// StopRDSInstance stops a DB instance.
func (a *Actions) StopRDSInstance(ctx context.Context, t types.Target) error {
	_, err := a.clients.RDS.StopDBInstance(ctx, &rds.StopDBInstanceInput{DBInstanceIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("stop db instance: %w", err)
	}
	return nil
}

// StartRDSInstance starts a DB instance.
func (a *Actions) StartRDSInstance(ctx context.Context, t types.Target) error {
	_, err := a.clients.RDS.StartDBInstance(ctx, &rds.StartDBInstanceInput{DBInstanceIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("start db instance: %w", err)
	}
	return nil
}

// PauseRedshift pauses a Redshift cluster.
func (a *Actions) PauseRedshift(ctx context.Context, t types.Target) error {
	_, err := a.clients.Redshift.PauseCluster(ctx, &redshift.PauseClusterInput{ClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("pause cluster: %w", err)
	}
	return nil
}

// ResumeRedshift resumes a Redshift cluster.
func (a *Actions) ResumeRedshift(ctx context.Context, t types.Target) error {
	_, err := a.clients.Redshift.ResumeCluster(ctx, &redshift.ResumeClusterInput{ClusterIdentifier: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("resume cluster: %w", err)
	}
	return nil
}

// StopTransferServer stops a Transfer Family server.
func (a *Actions) StopTransferServer(ctx context.Context, t types.Target) error {
	_, err := a.clients.Transfer.StopServer(ctx, &transfer.StopServerInput{ServerId: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}

// StartTransferServer starts a Transfer Family server.
func (a *Actions) StartTransferServer(ctx context.Context, t types.Target) error {
	_, err := a.clients.Transfer.StartServer(ctx, &transfer.StartServerInput{ServerId: aws.String(t.ID)})
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}
