package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"roomservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotPersisted is returned by operations that need the order's
	// store identity before it has been assigned.
	ErrOrderIsNotPersisted = errors.New("order has no identity yet")
)

// Order represents a room service order. It is the aggregate root that owns
// the line items and manages the lifecycle from placement to completion.
//
// Order follows these invariants:
//   - userName and room are never blank
//   - At least one item is owned at all times
//   - completedAt is set if and only if status is Completed
//   - Only Active orders can be edited or completed
//
// The identity is assigned by the store on first insert; until then ID
// returns 0.
type Order struct {
	// id is the store assigned identifier (0 until persisted)
	id int64

	// userID references the registered user that placed the order, if known
	userID *int64

	// userName is the display name snapshot taken at placement time
	userName string

	// room is where the order must be served
	room string

	// note is free text from the guest
	note string

	// status represents the current state in the order lifecycle
	status Status

	// originalOrderID links a duplicate back to the order it was copied from
	originalOrderID *int64

	createdAt   time.Time
	completedAt *time.Time

	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Active order with validation. This is the only way
// to create a fresh Order.
//
// Parameters:
//   - userName: display name of the guest, trimmed and required
//   - room: where the order is served, trimmed and required
//   - note: free text, trimmed, may be empty
//   - items: at least one constructed Item; the slice is copied
//   - createdAt: placement time, required
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every validation failure joined with errors.Join
//
// Example:
//
//	tea, _ := order.NewItem("Tea", 2)
//	o, err := order.NewOrder("Ali Veli", "12", "", []order.Item{tea}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(userName, room, note string, items []Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Active,
		note:          strings.TrimSpace(note),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserName(userName),
		o.setRoom(room),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an aggregate from persisted state and re-checks every
// invariant, including the status and completion time pairing.
//
// Returns:
//   - *Order: the restored order
//   - error: validation error if the stored state breaks an invariant
//
// Used by the order repository when mapping rows back to the domain.
func RestoreOrder(
	id int64,
	userID *int64,
	userName, room, note string,
	status Status,
	originalOrderID *int64,
	createdAt time.Time,
	completedAt *time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		o.AssignID(id),
		o.setUserName(userName),
		o.setRoom(room),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCompletedAt(completedAt != nil),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.completedAt = completedAt
	if userID != nil {
		o.userID = new(int64)
		*o.userID = *userID
	}
	if originalOrderID != nil {
		o.originalOrderID = new(int64)
		*o.originalOrderID = *originalOrderID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for nil or zero-value orders
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the store assigned identifier, or 0 if the order is not persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identity produced by the store. It may only be called
// once per aggregate.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	if o.id != 0 && o.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has identity %d", o.id))
	}
	o.id = id
	return nil
}

// UserID returns the registered user that placed the order, or nil.
func (o *Order) UserID() *int64 {
	return o.userID
}

// AssignUser links the order to a registered user.
func (o *Order) AssignUser(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId", fmt.Errorf("%d is not a positive identifier", userID))
	}
	o.userID = &userID
	return nil
}

// UserName returns the display name captured when the order was placed.
func (o *Order) UserName() string {
	return o.userName
}

// Room returns where the order is served.
func (o *Order) Room() string {
	return o.room
}

// Note returns the guest's free text, possibly empty.
func (o *Order) Note() string {
	return o.note
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OriginalOrderID returns the order this one was duplicated from, or nil.
func (o *Order) OriginalOrderID() *int64 {
	return o.originalOrderID
}

// LinkOriginal records that this order was derived from an existing order.
func (o *Order) LinkOriginal(originalOrderID int64) error {
	if originalOrderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"originalOrderId",
			fmt.Errorf("%d is not a positive identifier", originalOrderID),
		)
	}
	if o.id != 0 && o.id == originalOrderID {
		return errs.NewValueIsInvalidErrorWithCause("originalOrderId", errors.New("order cannot reference itself"))
	}
	o.originalOrderID = &originalOrderID
	return nil
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion time, or nil while the order is Active.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Edit replaces room, note and the complete item collection.
//
// This method enforces the following business rules:
//   - The order must be Active
//   - Room must not be blank
//   - At least one constructed item must be supplied
//
// Parameters:
//   - room: the new room, trimmed
//   - note: the new note, trimmed, may be empty
//   - items: the full replacement item collection
//
// Returns:
//   - nil on success
//   - errs.InvalidStateError if the order is not Active
//   - validation error if room or items are invalid
//
// The aggregate is left untouched on any error.
//
// Example:
//
//	coffee, _ := order.NewItem("Coffee", 1)
//	if err := o.Edit("14", "", []order.Item{coffee}); err != nil {
//	    // Handle completed order or invalid input
//	}
func (o *Order) Edit(room, note string, items []Item) error {
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}

	edited := *o
	if err := errors.Join(
		edited.setRoom(room),
		edited.setItems(items),
	); err != nil {
		return err
	}
	edited.note = strings.TrimSpace(note)

	*o = edited
	return nil
}

// Complete marks the order as served and records the completion time.
//
// This method enforces the following business rules:
//   - The order must be Active
//   - Completion is final
//
// Parameters:
//   - at: the completion time
//
// Returns:
//   - nil on successful completion
//   - errs.InvalidStateError if the order is already Completed
//
// Example:
//
//	if err := o.Complete(time.Now().UTC()); err != nil {
//	    // Order was already completed
//	}
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &at
	return nil
}

// Duplicate creates a new Active order carrying this order's user, room, note
// and a copy of its items, linked back through OriginalOrderID.
//
// The source must be persisted; its own status does not matter, so a
// completed order can be re-ordered.
//
// Parameters:
//   - at: creation time of the copy
//
// Returns:
//   - *Order: the unsaved copy
//   - ErrOrderIsNotPersisted if the source has no identity yet
//
// Example:
//
//	dup, err := source.Duplicate(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	err = repo.Add(ctx, dup)
func (o *Order) Duplicate(at time.Time) (*Order, error) {
	if o.id == 0 {
		return nil, ErrOrderIsNotPersisted
	}

	dup, err := NewOrder(o.userName, o.room, o.note, o.Items(), at)
	if err != nil {
		return nil, err
	}

	if o.userID != nil {
		if err = dup.AssignUser(*o.userID); err != nil {
			return nil, err
		}
	}

	if err = dup.LinkOriginal(o.id); err != nil {
		return nil, err
	}

	return dup, nil
}

func (o *Order) setUserName(userName string) error {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	o.userName = userName
	return nil
}

func (o *Order) setRoom(room string) error {
	room = strings.TrimSpace(room)
	if room == "" {
		return errs.NewValueIsRequiredError("room")
	}
	o.room = room
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
