package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yairfalse/nightshift/types"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// familyEnv maps each family to its switch. RDS_SCHEDULE is handled
// separately because it covers two families.
var familyEnv = []struct {
	family types.Family
	name   string
}{
	{types.FamilyEC2Instance, "EC2_SCHEDULE"},
	{types.FamilyAutoScalingGroup, "AUTOSCALING_SCHEDULE"},
	{types.FamilyAppRunnerService, "APPRUNNER_SCHEDULE"},
	{types.FamilyCloudWatchAlarm, "CLOUDWATCH_ALARM_SCHEDULE"},
	{types.FamilyDocumentDBCluster, "DOCUMENTDB_SCHEDULE"},
	{types.FamilyECSService, "ECS_SCHEDULE"},
	{types.FamilyRedshiftCluster, "REDSHIFT_SCHEDULE"},
	{types.FamilyTransferServer, "TRANSFER_SCHEDULE"},
}

// ApplyEnv overrides settings with the environment variables that are set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup("SCHEDULE_ACTION"); ok {
		c.Action = v
	}
	if v, ok := lookup("AWS_REGIONS"); ok {
		c.Regions = splitList(v)
	}
	if v, ok := lookup("TAG_KEY"); ok {
		c.TagKey = v
	}
	if v, ok := lookup("TAG_VALUE"); ok {
		c.TagValue = &v
	}
	if v, ok := lookup("EXCLUDED_DATES"); ok {
		c.ExcludedDates = splitList(v)
	}
	if v, ok := lookup("DRY_RUN"); ok {
		c.DryRun = parseBool(v)
	}

	if c.Families == nil {
		c.Families = map[string]bool{}
	}
	for _, fe := range familyEnv {
		if v, ok := lookup(fe.name); ok {
			c.Families[fe.family.String()] = parseBool(v)
		}
	}
	if v, ok := lookup("RDS_SCHEDULE"); ok {
		c.Families[types.FamilyRDSInstance.String()] = parseBool(v)
		c.Families[types.FamilyRDSCluster.String()] = parseBool(v)
	}
	if v, ok := lookup("RDS_INSTANCE_SCHEDULE"); ok {
		c.Families[types.FamilyRDSInstance.String()] = parseBool(v)
	}
	if v, ok := lookup("RDS_CLUSTER_SCHEDULE"); ok {
		c.Families[types.FamilyRDSCluster.String()] = parseBool(v)
	}

	if err := lookupInt(lookup, "WAIT_MAX_ATTEMPTS", &c.Wait.MaxAttempts); err != nil {
		return err
	}
	if v, ok := lookup("WAIT_INTERVAL"); ok {
		c.Wait.IntervalStr = v
	}
	if err := lookupInt(lookup, "REGION_CONCURRENCY", &c.RegionConcurrency); err != nil {
		return err
	}
	if err := lookupInt(lookup, "ECS_START_DESIRED_COUNT", &c.ECSStartCount); err != nil {
		return err
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		c.OTEL.Endpoint = v
	}
	if v, ok := lookup("OTEL_EXPORTER_OTLP_INSECURE"); ok {
		c.OTEL.Insecure = parseBool(v)
	}
	if v, ok := lookup("METRICS_TEXTFILE"); ok {
		c.MetricsTextfile = v
	}
	return nil
}

// parseBool accepts true and false in any case. Anything else is false.
func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func lookupInt(lookup LookupFunc, name string, dst *int) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return &types.ConfigError{Field: strings.ToLower(name), Reason: fmt.Sprintf("not an integer: %q", v)}
	}
	*dst = n
	return nil
}
