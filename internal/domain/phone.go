package domain

import (
	"strings"

	apperrors "palantir/internal/errors"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Phone keeps the digits of a phone number, with a leading '+' when the
// caller supplied an international prefix.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, apperrors.NewInvalidArgument("phone", "phone is required")
	}
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
		case r == '+', r == ' ', r == '-', r == '(', r == ')':
		default:
			return Phone{}, apperrors.NewInvalidArgument("phone", "phone contains invalid characters")
		}
	}
	if strings.LastIndex(trimmed, "+") > 0 {
		return Phone{}, apperrors.NewInvalidArgument("phone", "phone is invalid")
	}

	digits := onlyDigits(trimmed)
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return Phone{}, apperrors.NewInvalidArgument("phone", "phone must have between 10 and 15 digits")
	}
	if strings.HasPrefix(trimmed, "+") {
		digits = "+" + digits
	}
	return Phone{value: digits}, nil
}

func (p Phone) String() string {
	return p.value
}

func (Phone) isDestination() {}
