package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "palantir/internal/errors"
)

// OrderItem is a single priced line of an order. It has no mutators: a change
// is a removal followed by a new item.
type OrderItem struct {
	id        string
	productID string
	unitPrice decimal.Decimal
	quantity  int
	createdAt time.Time
}

type OrderItemProps struct {
	ID        string
	ProductID string
	UnitPrice decimal.Decimal
	Quantity  int
	CreatedAt time.Time
}

func NewOrderItem(productID string, unitPrice decimal.Decimal, quantity int) (*OrderItem, error) {
	return RestoreOrderItem(OrderItemProps{
		ID:        uuid.NewString(),
		ProductID: productID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	})
}

// RestoreOrderItem rehydrates a persisted item, applying the same validation
// as NewOrderItem.
func RestoreOrderItem(props OrderItemProps) (*OrderItem, error) {
	item := &OrderItem{
		id:        strings.TrimSpace(props.ID),
		productID: strings.TrimSpace(props.ProductID),
		unitPrice: props.UnitPrice,
		quantity:  props.Quantity,
		createdAt: props.CreatedAt,
	}
	if err := item.validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *OrderItem) validate() error {
	var details []apperrors.ValidationDetail
	if i.id == "" {
		details = append(details, apperrors.ValidationDetail{Field: "id", Message: "order item id is required"})
	}
	if i.productID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "productId", Message: "product id is required"})
	}
	if !i.unitPrice.IsPositive() {
		details = append(details, apperrors.ValidationDetail{Field: "unitPrice", Message: "unit price must be greater than zero"})
	}
	if i.quantity <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "quantity", Message: "quantity must be greater than zero"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order item", details...)
	}
	return nil
}

func (i *OrderItem) ID() string                 { return i.id }
func (i *OrderItem) ProductID() string          { return i.productID }
func (i *OrderItem) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i *OrderItem) Quantity() int              { return i.quantity }
func (i *OrderItem) CreatedAt() time.Time       { return i.createdAt }

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) Props() OrderItemProps {
	return OrderItemProps{
		ID:        i.id,
		ProductID: i.productID,
		UnitPrice: i.unitPrice,
		Quantity:  i.quantity,
		CreatedAt: i.createdAt,
	}
}
