// Package arn extracts resource identifiers from ARN-shaped strings.
//
// Every function is total: input that does not parse as an ARN, or whose
// resource part is too short for the requested segments, is returned
// unchanged.
package arn

import (
	"strings"

	awsarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Resource returns the resource part of an ARN
// (e.g. "instance/i-0abc" or "db:mydb"), or s when s is not an ARN.
func Resource(s string) string {
	parsed, err := awsarn.Parse(s)
	if err != nil {
		return s
	}
	return parsed.Resource
}

// Last returns the last sep-delimited segment of the resource part.
//
//	Last("arn:aws:ec2:us-east-1:123:instance/i-0abc", '/') == "i-0abc"
//	Last("arn:aws:rds:us-east-1:123:db:mydb", ':') == "mydb"
func Last(s string, sep byte) string {
	parts, ok := segments(s, sep, 2)
	if !ok {
		return s
	}
	return parts[len(parts)-1]
}

// SecondToLast returns the segment before the last one.
//
//	SecondToLast("arn:aws:apprunner:us-east-1:123:service/web/8fe1", '/') == "web"
func SecondToLast(s string, sep byte) string {
	parts, ok := segments(s, sep, 3)
	if !ok {
		return s
	}
	return parts[len(parts)-2]
}

// LastPair returns the last two segments, e.g. cluster and service of an
// ECS service ARN. When there are not enough segments it returns ("", s).
//
//	LastPair("arn:aws:ecs:us-east-1:123:service/my-cluster/my-service", '/') == ("my-cluster", "my-service")
func LastPair(s string, sep byte) (string, string) {
	parts, ok := segments(s, sep, 3)
	if !ok {
		return "", s
	}
	return parts[len(parts)-2], parts[len(parts)-1]
}

// AfterType strips the leading resource-type segment and returns the rest
// verbatim, so names that themselves contain sep survive.
//
//	AfterType("arn:aws:cloudwatch:us-east-1:123:alarm:cpu:high", ':') == "cpu:high"
func AfterType(s string, sep byte) string {
	res := Resource(s)
	if res == s {
		return s
	}
	i := strings.IndexByte(res, sep)
	if i < 0 || i == len(res)-1 {
		return s
	}
	return res[i+1:]
}

// segments splits the resource part and requires at least min segments,
// all non-empty at the tail.
func segments(s string, sep byte, min int) ([]string, bool) {
	res := Resource(s)
	if res == s {
		return nil, false
	}
	parts := strings.Split(res, string(sep))
	if len(parts) < min || parts[len(parts)-1] == "" {
		return nil, false
	}
	return parts, true
}
