package domain

import "strings"

// User is the fabricated identity stored after a sign-in. It is not a
// security principal: nothing about it is verified.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUser builds a User from a username. The e-mail is derived from the
// username so the same name always yields the same identity.
func NewUser(username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username", "required")
	}
	return &User{
		Username: username,
		Email:    username + "@example.com",
	}, nil
}
