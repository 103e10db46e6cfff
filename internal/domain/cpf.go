package domain

import (
	"fmt"
	"strings"

	apperrors "palantir/internal/errors"
)

// CPF is the Brazilian individual tax id, stored as its 11 digits.
type CPF struct {
	value string
}

func NewCPF(raw string) (CPF, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return CPF{}, apperrors.NewInvalidArgument("cpf", "cpf is required")
	}
	if len(digits) != 11 {
		return CPF{}, apperrors.NewInvalidArgument("cpf", "cpf must have 11 digits")
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return CPF{}, apperrors.NewInvalidArgument("cpf", "cpf is invalid")
	}
	if cpfCheckDigit(digits[:9]) != digits[9] || cpfCheckDigit(digits[:10]) != digits[10] {
		return CPF{}, apperrors.NewInvalidArgument("cpf", "cpf is invalid")
	}
	return CPF{value: digits}, nil
}

func (c CPF) String() string {
	return c.value
}

// Formatted renders the CPF as 000.000.000-00.
func (c CPF) Formatted() string {
	if len(c.value) != 11 {
		return c.value
	}
	return fmt.Sprintf("%s.%s.%s-%s", c.value[0:3], c.value[3:6], c.value[6:9], c.value[9:11])
}

func cpfCheckDigit(base string) byte {
	sum := 0
	weight := len(base) + 1
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return byte('0' + rest)
}

func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
