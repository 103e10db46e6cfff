package domain

import (
	"regexp"
	"strings"

	apperrors "palantir/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a trimmed, lower-cased e-mail address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, apperrors.NewInvalidArgument("email", "email is required")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, apperrors.NewInvalidArgument("email", "email is invalid")
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (Email) isDestination() {}
