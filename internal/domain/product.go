package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "palantir/internal/errors"
)

type Product struct {
	ID          string
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(storeID, categoryID, name, description string, price decimal.Decimal) (*Product, error) {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(storeID) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "storeId", Message: "store id is required"})
	}
	if strings.TrimSpace(categoryID) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "categoryId", Message: "category id is required"})
	}
	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if !price.IsPositive() {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must be greater than zero"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid product", details...)
	}

	now := time.Now().UTC()
	return &Product{
		ID:          uuid.NewString(),
		StoreID:     strings.TrimSpace(storeID),
		CategoryID:  strings.TrimSpace(categoryID),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOrderable reports whether the product can be added to a new order.
func (p Product) IsOrderable() bool {
	return p.IsActive && p.Price.IsPositive()
}
