// Package config loads nightshift settings from an optional YAML or TOML
// file and the environment, and turns them into an orchestrator.Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yairfalse/nightshift/orchestrator"
	"github.com/yairfalse/nightshift/types"
)

// Defaults.
const (
	DefaultServiceName       = "nightshift"
	DefaultWaitMaxAttempts   = 40
	DefaultWaitInterval      = "15s"
	DefaultRegionConcurrency = 1
	DefaultECSStartCount     = 1
)

// Config is the root configuration structure.
type Config struct {
	Action        string          `yaml:"action" toml:"action"`
	Regions       []string        `yaml:"regions" toml:"regions"`
	TagKey        string          `yaml:"tag_key" toml:"tag_key"`
	TagValue      *string         `yaml:"tag_value" toml:"tag_value"`
	Families      map[string]bool `yaml:"families" toml:"families"`
	ExcludedDates []string        `yaml:"excluded_dates" toml:"excluded_dates"`
	DryRun        bool            `yaml:"dry_run" toml:"dry_run"`

	Wait              WaitConfig `yaml:"wait" toml:"wait"`
	RegionConcurrency int        `yaml:"region_concurrency" toml:"region_concurrency"`
	ECSStartCount     int        `yaml:"ecs_start_desired_count" toml:"ecs_start_desired_count"`

	Log             LogConfig  `yaml:"log" toml:"log"`
	OTEL            OTELConfig `yaml:"otel" toml:"otel"`
	MetricsTextfile string     `yaml:"metrics_textfile" toml:"metrics_textfile"`
}

// WaitConfig bounds the start-time wait for scaling group members.
type WaitConfig struct {
	MaxAttempts int           `yaml:"max_attempts" toml:"max_attempts"`
	IntervalStr string        `yaml:"interval" toml:"interval"`
	Interval    time.Duration `yaml:"-" toml:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Pretty bool   `yaml:"pretty" toml:"pretty"`
}

// OTELConfig holds OpenTelemetry settings.
type OTELConfig struct {
	Endpoint    string `yaml:"endpoint" toml:"endpoint"`
	Insecure    bool   `yaml:"insecure" toml:"insecure"`
	ServiceName string `yaml:"service_name" toml:"service_name"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Families: map[string]bool{
			types.FamilyEC2Instance.String(): true,
		},
		Wait: WaitConfig{
			MaxAttempts: DefaultWaitMaxAttempts,
			IntervalStr: DefaultWaitInterval,
		},
		RegionConcurrency: DefaultRegionConcurrency,
		ECSStartCount:     DefaultECSStartCount,
		Log:               LogConfig{Level: "info"},
		OTEL:              OTELConfig{ServiceName: DefaultServiceName},
	}
}

// Load builds the configuration: defaults, then the file at path (skipped
// when path is empty), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.parseInterval(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return &types.ConfigError{Field: "config", Reason: fmt.Sprintf("read config file: %v", err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		err = yaml.Unmarshal(data, c)
	}
	if err != nil {
		return &types.ConfigError{Field: "config", Reason: fmt.Sprintf("parse %s: %v", path, err)}
	}
	return nil
}

func (c *Config) parseInterval() error {
	if c.Wait.IntervalStr == "" {
		c.Wait.IntervalStr = DefaultWaitInterval
	}
	d, err := time.ParseDuration(c.Wait.IntervalStr)
	if err != nil {
		return &types.ConfigError{Field: "wait_interval", Reason: fmt.Sprintf("parse %q: %v", c.Wait.IntervalStr, err)}
	}
	c.Wait.Interval = d
	return nil
}

// Enabled reports whether a family is switched on.
func (c *Config) Enabled(f types.Family) bool {
	return c.Families[f.String()]
}

// EnabledFamilies returns the switched-on families in processing order.
func (c *Config) EnabledFamilies() []types.Family {
	var out []types.Family
	for _, f := range types.Families() {
		if c.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the configuration is valid.
func (c *Config) Validate() error {
	if _, err := types.ParseAction(c.Action); err != nil {
		return &types.ConfigError{Field: "action", Reason: err.Error()}
	}
	if len(c.Regions) == 0 {
		return &types.ConfigError{Field: "regions", Reason: "at least one region required"}
	}
	for _, r := range c.Regions {
		if strings.TrimSpace(r) == "" {
			return &types.ConfigError{Field: "regions", Reason: "empty region name"}
		}
	}
	if c.TagKey == "" {
		return &types.ConfigError{Field: "tag_key", Reason: "required"}
	}
	// An empty tag value is valid, only an unset one is rejected.
	if c.TagValue == nil {
		return &types.ConfigError{Field: "tag_value", Reason: "required"}
	}
	for name := range c.Families {
		if !types.Family(name).Valid() {
			return &types.ConfigError{Field: "families", Reason: fmt.Sprintf("unknown family %q", name)}
		}
	}
	if _, err := types.NewCalendar(c.ExcludedDates); err != nil {
		return err
	}
	if c.Wait.MaxAttempts <= 0 {
		return &types.ConfigError{Field: "wait_max_attempts", Reason: "must be positive"}
	}
	if c.Wait.Interval <= 0 {
		return &types.ConfigError{Field: "wait_interval", Reason: "must be positive"}
	}
	if c.RegionConcurrency < 1 {
		return &types.ConfigError{Field: "region_concurrency", Reason: "must be at least 1"}
	}
	if c.ECSStartCount < 0 {
		return &types.ConfigError{Field: "ecs_start_desired_count", Reason: "must not be negative"}
	}
	return nil
}

// Orchestrator validates the configuration and converts it.
func (c *Config) Orchestrator() (orchestrator.Config, error) {
	if err := c.Validate(); err != nil {
		return orchestrator.Config{}, err
	}

	action, _ := types.ParseAction(c.Action)
	cal, _ := types.NewCalendar(c.ExcludedDates)

	return orchestrator.Config{
		Action:            action,
		Regions:           c.Regions,
		Filter:            types.TagFilter{Key: c.TagKey, Value: *c.TagValue},
		Families:          c.EnabledFamilies(),
		Calendar:          cal,
		DryRun:            c.DryRun,
		WaitMaxAttempts:   c.Wait.MaxAttempts,
		WaitInterval:      c.Wait.Interval,
		RegionConcurrency: c.RegionConcurrency,
	}, nil
}
