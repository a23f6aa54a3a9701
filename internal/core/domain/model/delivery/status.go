package delivery

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any delivery status change outside
// the closed transition table.
var ErrInvalidTransition = errors.New("invalid delivery status transition")

// Status represents the state of a delivery attempt cycle.
//
// Transition table:
//
//	InTransit ──> Delivered | Failed
//	Failed    ──> Reattempt          (only while attempts remain)
//	Reattempt ──> Delivered | Failed
//
// Delivered is terminal. Failed is terminal once the attempt cap is
// reached. Pending exists for deliveries restored from storage that were
// created but never attempted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is a created delivery with no attempt in progress.
	Pending

	// InTransit is the first attempt in progress.
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Failed records an unsuccessful attempt. Terminal once the attempt
	// cap is reached.
	Failed

	// Reattempt is a follow-up attempt in progress after a failure.
	Reattempt
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Failed:    "Failed",
		Reattempt: "Reattempt",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Failed:    "Failed",
		Reattempt: "Reattempt",
	}
}

// StatusFromString maps a status name onto the enumerated set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a known delivery status", ErrInvalidTransition, s)
}

// Validate checks that the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid delivery status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAttemptInProgress reports whether a courier is currently attempting the
// delivery.
func (s Status) IsAttemptInProgress() bool {
	return s == InTransit || s == Reattempt
}
