package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yairfalse/nightshift/internal/config"
)

var (
	version = "0.1.0"

	configPath string
	prettyLogs bool
	dryRun     bool
	regions    []string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "nightshift",
		Short: "Scheduled stop/start for tagged AWS resources",
		Long: `Nightshift - scheduled stop/start for tagged AWS resources

Nightshift finds resources carrying a schedule tag in every configured
region and stops or starts them: EC2 instances, scaling groups, App Runner
services, CloudWatch alarms, DocumentDB and RDS databases, ECS services,
Redshift clusters and Transfer servers.

Settings come from an optional YAML or TOML file, then the environment,
then flags. Only invalid configuration makes the process exit non-zero;
failures against the cloud are logged and reported per family.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`Nightshift {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file path (.yaml or .toml)")
	flags.BoolVar(&prettyLogs, "pretty", false, "Human-readable console logs")
	flags.BoolVar(&dryRun, "dry-run", false, "Discover and log without changing anything")
	flags.StringSliceVar(&regions, "region", nil, "Region to process, repeatable (overrides AWS_REGIONS)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the file and environment, then applies the flags the
// user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Log.Pretty = prettyLogs
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("region") {
		cfg.Regions = regions
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}
