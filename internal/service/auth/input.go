package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/leximind/internal/domain"
)

// MaxUsernameLength bounds the fabricated username.
const MaxUsernameLength = 64

// Credentials is what the sign-in and sign-up forms submit. Only Username is
// used; Password and Email are accepted and ignored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Validate validates the credentials.
func (c Credentials) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(c.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(username) > MaxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
