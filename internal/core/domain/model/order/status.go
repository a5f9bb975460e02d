package order

import (
	"fmt"

	"roomservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Active ──> Completed
//
// Completed is final. The persisted form is the lower-case name returned by
// String.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial status; active orders are waiting to be served
	// and can still be edited.
	Active

	// Completed indicates the order has been served.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Completed: "completed",
	}
}

// ParseStatus converts a persisted or user supplied name into a Status.
//
// Parameters:
//   - s: the lower-case name, "active" or "completed"
//
// Returns:
//   - (Status, nil) for a known name
//   - (Unknown, error) for anything else, including "unknown"
//
// Example:
//
//	status, err := order.ParseStatus(dto.Status)
//	if err != nil {
//	    // The stored row is corrupt
//	}
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is Active or Completed.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is Unknown or out of range
//
// Used when restoring orders from the store.
func (s Status) Validate() error {
	if s != Active && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "active" or "completed" for valid statuses
//   - "unknown" for any other value
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value.
//
// Example:
//
//	fmt.Println(o.Status()) // Output: "active"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateEdit checks if the status allows editing without changing anything.
//
// Valid statuses for editing:
//   - Active
//
// Invalid statuses for editing:
//   - Completed (a served order is final)
//   - Unknown (invalid status)
//
// Returns:
//   - nil if the order may be edited
//   - errs.InvalidStateError otherwise
//
// This method is used by Order.Edit() before any field is touched.
//
// Example:
//
//	if err := status.ValidateEdit(); err != nil {
//	    return err
//	}
//	// Proceed with the edit
func (s Status) ValidateEdit() error {
	if s != Active {
		return errs.NewInvalidStateError("order", s.String(), "edit")
	}
	return nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed (order served)
//
// Invalid transitions:
//   - Completed -> Completed (already completed)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (Unknown, errs.InvalidStateError) if the transition is not allowed
//
// This method is used by Order.Complete(). Completed is a final state with
// no further transitions.
//
// Example:
//
//	newStatus, err := currentStatus.Complete()
//	if err != nil {
//	    // Order was not Active
//	}
func (s Status) Complete() (Status, error) {
	if s != Active {
		return Unknown, errs.NewInvalidStateError("order", s.String(), "complete")
	}
	return Completed, nil
}

// ValidateCompletedAt validates the consistency between the status and the
// completion time.
//
// Business Rules:
//   - Active orders must not have a completion time
//   - Completed orders must have a completion time
//
// Parameters:
//   - hasCompletedAt: whether the order carries a completion time
//
// Returns:
//   - error: validation error if status and completion time disagree
func (s Status) ValidateCompletedAt(hasCompletedAt bool) error {
	if s == Completed && !hasCompletedAt {
		return errs.NewValueIsRequiredErrorWithCause("completedAt", fmt.Errorf("%s order has no completion time", s))
	}
	if s != Completed && hasCompletedAt {
		return errs.NewValueIsInvalidErrorWithCause("completedAt", fmt.Errorf("%s order has a completion time", s))
	}
	return nil
}
