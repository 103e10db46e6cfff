package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "palantir/internal/errors"
)

// Customer is referenced by orders through its id.
type Customer struct {
	ID        string
	Name      string
	Email     Email
	CPF       *CPF
	Phone     *Phone
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomer(name, email string, cpf, phone *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewInvalidArgument("name", "name is required")
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	customer := &Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: emailVO,
	}

	if cpf = normalizeOptional(cpf); cpf != nil {
		cpfVO, err := NewCPF(*cpf)
		if err != nil {
			return nil, err
		}
		customer.CPF = &cpfVO
	}
	if phone = normalizeOptional(phone); phone != nil {
		phoneVO, err := NewPhone(*phone)
		if err != nil {
			return nil, err
		}
		customer.Phone = &phoneVO
	}

	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	return customer, nil
}
