package order

import (
	"errors"
	"fmt"

	"tableorder/internal/pkg/errs"
)

var (
	// ErrInvalidStatus is returned for any status string outside the enumeration.
	ErrInvalidStatus = errs.NewValueIsInvalidError("status")

	// ErrTransitionNotAllowed is returned when the state machine has no edge
	// from the current status to the requested one.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")
)

// Status is the lifecycle state of an order. The string values are the wire
// format shared with every client and must stay stable.
//
//	pending ──> preparing ──> ready ──> completed
//	   │
//	   └──> cancelled
type Status string

const (
	Pending   Status = "pending"
	Preparing Status = "preparing"
	Ready     Status = "ready"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

// transitions lists the only legal edges of the state machine.
func transitions() map[Status]Status {
	return map[Status]Status{
		Pending:   Preparing,
		Preparing: Ready,
		Ready:     Completed,
	}
}

// AllStatuses returns the enumeration in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Completed, Cancelled}
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, Ready, Completed, Cancelled:
		return nil
	default:
		return fmt.Errorf("%w: %q is not one of pending, preparing, ready, completed, cancelled", ErrInvalidStatus, string(s))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	if s == Pending && target == Cancelled {
		return true
	}
	next, ok := transitions()[s]
	return ok && next == target
}

// TransitionTo returns target if the edge s -> target exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, target)
	}
	return target, nil
}

// Previous returns the only status from which target can be reached by a
// forward (non-cancel) transition. Used as the expected prior state of the
// conditional write.
func Previous(target Status) (Status, bool) {
	for from, to := range transitions() {
		if to == target {
			return from, true
		}
	}
	if target == Cancelled {
		return Pending, true
	}
	return "", false
}
