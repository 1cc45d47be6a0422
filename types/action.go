package types

import (
	"fmt"
	"strings"
)

// ScheduleAction is the lifecycle action requested for a run.
type ScheduleAction string

const (
	ActionStop  ScheduleAction = "stop"
	ActionStart ScheduleAction = "start"
)

// ParseAction parses a case-insensitive action name.
func ParseAction(s string) (ScheduleAction, error) {
	switch ScheduleAction(strings.ToLower(strings.TrimSpace(s))) {
	case ActionStop:
		return ActionStop, nil
	case ActionStart:
		return ActionStart, nil
	default:
		return "", fmt.Errorf("invalid action %q: must be 'stop' or 'start'", s)
	}
}

// String implements fmt.Stringer.
func (a ScheduleAction) String() string {
	return string(a)
}

// Verb is the concrete operation a family performs for an action
// (stop, start, pause, resume, suspend, enable, disable, scale).
type Verb string

const (
	VerbStop     Verb = "stop"
	VerbStart    Verb = "start"
	VerbPause    Verb = "pause"
	VerbResume   Verb = "resume"
	VerbSuspend  Verb = "suspend"
	VerbEnable   Verb = "enable"
	VerbDisable  Verb = "disable"
	VerbScaleIn  Verb = "scale-in"
	VerbScaleOut Verb = "scale-out"
)

// VerbPair maps a ScheduleAction to the family's verb.
type VerbPair struct {
	Stop  Verb
	Start Verb
}

// For returns the verb that implements the action.
func (p VerbPair) For(a ScheduleAction) Verb {
	if a == ActionStart {
		return p.Start
	}
	return p.Stop
}
