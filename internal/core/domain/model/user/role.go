package user

import (
	"fmt"

	"roomservice/internal/pkg/errs"
)

// Role is the access level of a user.
type Role int

const (
	UnknownRole Role = iota
	Regular
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Regular:     "user",
		Admin:       "admin",
	}
}

func (r Role) Validate() error {
	if r != Regular && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
