package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any shipment status change outside
// the closed transition table.
var ErrInvalidTransition = errors.New("invalid shipment status transition")

// Status represents the dispatch state of a shipment.
//
// Transition table:
//
//	Pending   ──> InTransit | Cancelled
//	InTransit ──> Delivered | Delayed | Cancelled
//	Delayed   ──> Cancelled
//
// Delivered and Cancelled are terminal. Delayed is a holding state for
// manual intervention: the shipment keeps its driver and vehicle claim and
// can only be resolved by cancellation, which releases the claim and hands
// the order back for re-dispatch.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly dispatched shipment. The
	// driver and vehicle claim is already held.
	Pending

	// InTransit indicates the shipment has departed.
	InTransit

	// Delivered indicates the shipment arrived. Terminal; the claim is
	// released on this transition.
	Delivered

	// Delayed flags a shipment needing manual intervention. The claim is
	// deliberately kept: resources are never freed silently mid-problem.
	Delayed

	// Cancelled indicates the shipment was abandoned. Terminal; the claim
	// is released on this transition.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Delayed:   "Delayed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Delayed:   "Delayed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString maps a caller-supplied status name onto the enumerated
// set; anything else fails with ErrInvalidTransition.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a known shipment status", ErrInvalidTransition, s)
}

// Validate checks that the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid shipment status", ErrInvalidTransition, s)
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

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// HoldsResources reports whether a shipment in this status holds its
// exclusive driver and vehicle claim.
func (s Status) HoldsResources() bool {
	return s == Pending || s == InTransit || s == Delayed
}

// TransitionTo validates the move from s to target per the transition table
// and returns the new status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	allowed := map[Status][]Status{
		Pending:   {InTransit, Cancelled},
		InTransit: {Delivered, Delayed, Cancelled},
		Delayed:   {Cancelled},
	}

	for _, next := range allowed[s] {
		if next == target {
			return target, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}
