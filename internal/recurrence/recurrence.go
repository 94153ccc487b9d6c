// Package recurrence decides when a completed list item becomes due again.
package recurrence

import (
	"strings"
	"time"
)

// Repeat values stored in the Repeatable domain.
const (
	None    = "None"
	Daily   = "Daily"
	Weekly  = "Weekly"
	Monthly = "Monthly"
)

// Values lists the accepted repeat values.
var Values = []string{None, Daily, Weekly, Monthly}

// Known reports whether v is one of Values, ignoring case.
func Known(v string) bool {
	for _, k := range Values {
		if strings.EqualFold(k, v) {
			return true
		}
	}
	return false
}

// NextEligible returns the instant a completion at completedAt stops blocking
// the item. ok is false for one-shot items.
func NextEligible(repeat string, completedAt time.Time) (time.Time, bool) {
	switch {
	case strings.EqualFold(repeat, Daily):
		return completedAt.AddDate(0, 0, 1), true
	case strings.EqualFold(repeat, Weekly):
		return completedAt.AddDate(0, 0, 7), true
	case strings.EqualFold(repeat, Monthly):
		return completedAt.AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}

// Eligible reports whether an item is open for the user at now. Items never
// completed are always open; completed one-shot items never are.
func Eligible(completed bool, completedAt *time.Time, repeat string, now time.Time) bool {
	if !completed {
		return true
	}
	if completedAt == nil {
		// completed without a timestamp: only recurring items reopen
		_, ok := NextEligible(repeat, time.Time{})
		return ok
	}
	next, ok := NextEligible(repeat, *completedAt)
	if !ok {
		return false
	}
	return !now.Before(next)
}
