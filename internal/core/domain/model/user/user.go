package user

import (
	"errors"
	"fmt"
	"strings"

	"roomservice/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered display name with its current role.
type User struct {
	id       int64
	fullName string
	role     Role

	isConstructed bool
}

// NewUser creates an unsaved user. The name is trimmed and must not be blank.
func NewUser(fullName string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setFullName(fullName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

// AssignID records the identity returned by the store's upsert.
func (u *User) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	u.id = id
	return nil
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	u.fullName = fullName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
