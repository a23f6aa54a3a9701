package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any order status change outside the
// closed transition graph. Caller-supplied statuses that are not part of the
// enumerated set fail with this error as well.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order.
//
// The status is monotonic through the chain
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//
// with an escape to Cancelled from any non-terminal state. Delivered and
// Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order.
	Pending

	// Processing indicates a shipment has been dispatched for the order.
	Processing

	// Shipped indicates the shipment for the order has departed.
	Shipped

	// Delivered indicates the order reached its recipient. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString maps a caller-supplied status name onto the enumerated
// set. Anything outside the set fails with ErrInvalidTransition: an unknown
// target status can never be a valid transition.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a known order status", ErrInvalidTransition, s)
}

// Validate checks that the Status value is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid order status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
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

// next returns the single forward successor in the monotonic chain.
func (s Status) next() (Status, bool) {
	switch s {
	case Pending:
		return Processing, true
	case Processing:
		return Shipped, true
	case Shipped:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// TransitionTo validates the move from s to target and returns the new
// status. Valid moves are the single forward step in the chain and the
// Cancelled escape from any non-terminal state. Everything else fails with
// ErrInvalidTransition: backward moves, skipped steps, and any move out of
// a terminal state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == Cancelled {
		if s.IsTerminal() {
			return Unknown, fmt.Errorf("%w: cannot cancel a %s order", ErrInvalidTransition, s)
		}
		return Cancelled, nil
	}

	if successor, ok := s.next(); ok && successor == target {
		return target, nil
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}
