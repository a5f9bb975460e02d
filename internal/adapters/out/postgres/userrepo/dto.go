// Package userrepo persists the user registry.
package userrepo

// UserDTO maps a row of the users table.
type UserDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	FullName string
	Role     string
}

func (UserDTO) TableName() string {
	return "users"
}
