package types

// Family is a category of cloud resource with a uniform discovery and
// action contract. The set is closed.
type Family string

const (
	FamilyEC2Instance       Family = "ec2-instance"
	FamilyAutoScalingGroup  Family = "autoscaling-group"
	FamilyAppRunnerService  Family = "apprunner-service"
	FamilyCloudWatchAlarm   Family = "cloudwatch-alarm"
	FamilyDocumentDBCluster Family = "documentdb-cluster"
	FamilyECSService        Family = "ecs-service"
	FamilyRDSCluster        Family = "rds-cluster"
	FamilyRDSInstance       Family = "rds-instance"
	FamilyRedshiftCluster   Family = "redshift-cluster"
	FamilyTransferServer    Family = "transfer-server"
)

// Families returns every family in processing order.
func Families() []Family {
	return []Family{
		FamilyEC2Instance,
		FamilyAutoScalingGroup,
		FamilyAppRunnerService,
		FamilyCloudWatchAlarm,
		FamilyDocumentDBCluster,
		FamilyECSService,
		FamilyRDSCluster,
		FamilyRDSInstance,
		FamilyRedshiftCluster,
		FamilyTransferServer,
	}
}

// Valid reports whether f is a member of the closed set.
func (f Family) Valid() bool {
	for _, known := range Families() {
		if f == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}
