package types

import (
	"strings"
	"time"

	"github.com/google/btree"
)

// MonthDayLayout is the time layout for excluded dates.
const MonthDayLayout = "01-02"

// Calendar is the ordered set of MM-DD dates on which a run is a no-op.
type Calendar struct {
	dates *btree.BTreeG[string]
}

// NewCalendar validates and stores the given MM-DD dates.
func NewCalendar(dates []string) (*Calendar, error) {
	c := &Calendar{dates: btree.NewOrderedG[string](idSetDegree)}
	for _, d := range dates {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, err := time.Parse(MonthDayLayout, d); err != nil {
			return nil, &ConfigError{Field: "excluded_dates", Reason: "invalid date " + d + ", expected MM-DD"}
		}
		c.dates.ReplaceOrInsert(d)
	}
	return c, nil
}

// Excludes reports whether the UTC calendar day of now is excluded.
func (c *Calendar) Excludes(now time.Time) bool {
	if c == nil || c.dates == nil {
		return false
	}
	return c.dates.Has(now.UTC().Format(MonthDayLayout))
}

// Dates returns the excluded dates in ascending order.
func (c *Calendar) Dates() []string {
	if c == nil || c.dates == nil {
		return nil
	}
	out := make([]string, 0, c.dates.Len())
	c.dates.Ascend(func(d string) bool {
		out = append(out, d)
		return true
	})
	return out
}
