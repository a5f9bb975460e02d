package queries

import (
	"errors"
	"strings"

	"roomservice/internal/core/domain/model/order"
	"roomservice/internal/pkg/errs"
	"roomservice/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery lists the orders placed under a user name, newest first.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery("Ali Veli", "active")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQuery struct {
	userName string
	status   order.Status

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery requires a non blank userName. statusFilter narrows
// the listing only when it names a known status ("active" or "completed");
// any other value, including the empty string, lists every order.
func NewGetUserOrdersQuery(userName, statusFilter string) (GetUserOrdersQuery, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return GetUserOrdersQuery{}, errs.NewValueIsRequiredError("userName")
	}

	status, err := order.ParseStatus(strings.TrimSpace(statusFilter))
	if err != nil {
		status = order.Unknown
	}

	return GetUserOrdersQuery{
		userName: userName,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserName() string {
	return q.userName
}

// Status returns the filter, or order.Unknown when the listing is unfiltered.
func (q GetUserOrdersQuery) Status() order.Status {
	return q.status
}
