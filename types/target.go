package types

// TagFilter is an exact, case-sensitive key/value match.
type TagFilter struct {
	Key   string
	Value string
}

// String renders the filter as key=value.
func (f TagFilter) String() string {
	return f.Key + "=" + f.Value
}

// Target is a discovered resource ready for an action call.
// ARN is the identifier returned by discovery; ID and Parent are the
// segments the provider call needs (e.g. service and cluster for ECS).
type Target struct {
	ARN    string
	ID     string
	Parent string
}

// Name returns the most specific identifier for logs.
func (t Target) Name() string {
	if t.ID != "" {
		return t.ID
	}
	return t.ARN
}
