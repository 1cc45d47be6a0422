package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ConfigError is an invalid or missing required setting. It is fatal and
// raised before any cloud call.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// DiscoveryError is a failed tag lookup, membership listing or state query.
// It aborts the current family for the current region only.
type DiscoveryError struct {
	Op           string
	Region       string
	ResourceType string
	Err          error
}

func (e *DiscoveryError) Error() string {
	var b strings.Builder
	b.WriteString("discovery: ")
	b.WriteString(e.Op)
	if e.ResourceType != "" {
		b.WriteString(" ")
		b.WriteString(e.ResourceType)
	}
	if e.Region != "" {
		b.WriteString(" in ")
		b.WriteString(e.Region)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ActionError is a failed state-changing call for a single resource.
type ActionError struct {
	Family   Family
	Resource string
	Verb     Verb
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Family, e.Verb, e.Resource, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Code returns the AWS API error code of the cause, or "" when the cause
// is not an API error.
func (e *ActionError) Code() string {
	return ErrorCode(e.Err)
}

// TimeoutError means the waiter exhausted its attempts with targets still
// pending.
type TimeoutError struct {
	Attempts  int
	Remaining []string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %d attempts waiting for %d resources: %s",
		e.Attempts, len(e.Remaining), strings.Join(e.Remaining, ","))
}

// ErrorCode extracts the smithy API error code from err.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
