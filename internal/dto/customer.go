package dto

import "time"

type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	CPF   *string `json:"cpf,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type CustomerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       *string   `json:"cpf,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
