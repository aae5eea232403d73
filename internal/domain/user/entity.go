package user

import "errors"

// ErrNotFound is returned by storage when no row matches the requested id.
var ErrNotFound = errors.New("user not found")

// User represents a user entity in the system.
type User struct {
	ID    int64  `json:"id"`    // ID is assigned by storage and never changes
	Name  string `json:"name"`  // Name is the full name of the user
	Email string `json:"email"` // Email is the contact address of the user
}

// Changes lists the fields an update writes. Nil fields keep their stored value.
type Changes struct {
	Name  *string
	Email *string
}

// Empty reports whether no field is set.
func (c Changes) Empty() bool {
	return c.Name == nil && c.Email == nil
}
