package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "palantir/internal/errors"
)

type Category struct {
	ID        string
	StoreID   string
	Name      string
	CreatedAt time.Time
}

func NewCategory(storeID, name string) (*Category, error) {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(storeID) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "storeId", Message: "store id is required"})
	}
	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid category", details...)
	}

	return &Category{
		ID:        uuid.NewString(),
		StoreID:   strings.TrimSpace(storeID),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}, nil
}
