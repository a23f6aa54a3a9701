package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority represents the urgency of an order. It does not affect the
// lifecycle state machine; it is carried for dispatch planning and reporting.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:    "Low",
		PriorityNormal: "Normal",
		PriorityHigh:   "High",
		PriorityUrgent: "Urgent",
	}
}

// PriorityFromString maps a priority name onto the enumerated set.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a known priority", s))
}

// Validate checks that the Priority value is one of the enumerated levels.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
