package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "palantir/internal/errors"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusReceived   OrderStatus = "RECEIVED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusFinished   OrderStatus = "FINISHED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusInProgress,
		OrderStatusReady, OrderStatusFinished, OrderStatusCanceled:
		return true
	}
	return false
}

// Order is the aggregate root of a customer order. It owns its items and
// references the customer by id only.
type Order struct {
	id         string
	customerID *string
	status     OrderStatus
	storeID    string
	totemID    *string
	items      []*OrderItem
	createdAt  time.Time
	updatedAt  time.Time
}

type OrderProps struct {
	ID         string
	CustomerID *string
	Status     OrderStatus
	StoreID    string
	TotemID    *string
	Items      []OrderItemProps
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewOrder(storeID string, totemID *string, items []*OrderItem) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		id:        uuid.NewString(),
		status:    OrderStatusPending,
		storeID:   strings.TrimSpace(storeID),
		totemID:   normalizeOptional(totemID),
		items:     append([]*OrderItem(nil), items...),
		createdAt: now,
		updatedAt: now,
	}
	if err := validateOrder(order.id, order.status, order.storeID, order.items); err != nil {
		return nil, err
	}
	return order, nil
}

func RestoreOrder(props OrderProps) (*Order, error) {
	items := make([]*OrderItem, 0, len(props.Items))
	for _, ip := range props.Items {
		item, err := RestoreOrderItem(ip)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order := &Order{
		id:         strings.TrimSpace(props.ID),
		customerID: normalizeOptional(props.CustomerID),
		status:     props.Status,
		storeID:    strings.TrimSpace(props.StoreID),
		totemID:    normalizeOptional(props.TotemID),
		items:      items,
		createdAt:  props.CreatedAt,
		updatedAt:  props.UpdatedAt,
	}
	if err := validateOrder(order.id, order.status, order.storeID, order.items); err != nil {
		return nil, err
	}
	return order, nil
}

func validateOrder(id string, status OrderStatus, storeID string, items []*OrderItem) error {
	var details []apperrors.ValidationDetail
	if id == "" {
		details = append(details, apperrors.ValidationDetail{Field: "id", Message: "order id is required"})
	}
	if !status.IsValid() {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("order status %q is invalid", status)})
	}
	if storeID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "storeId", Message: "store id is required"})
	}
	if len(items) == 0 {
		details = append(details, apperrors.ValidationDetail{Field: "items", Message: "order must have at least one item"})
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			details = append(details, apperrors.ValidationDetail{Field: "items", Message: "order item must not be nil"})
			continue
		}
		if _, dup := seen[item.ID()]; dup {
			details = append(details, apperrors.ValidationDetail{Field: "items", Message: fmt.Sprintf("order item %s is duplicated", item.ID())})
		}
		seen[item.ID()] = struct{}{}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order", details...)
	}
	return nil
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) StoreID() string      { return o.storeID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

func (o *Order) CustomerID() (string, bool) {
	if o.customerID == nil {
		return "", false
	}
	return *o.customerID, true
}

func (o *Order) TotemID() (string, bool) {
	if o.totemID == nil {
		return "", false
	}
	return *o.totemID, true
}

// Items returns a copy of the item slice; the items themselves are immutable.
func (o *Order) Items() []*OrderItem {
	return append([]*OrderItem(nil), o.items...)
}

func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) SetToReceived() error {
	return o.transition(OrderStatusPending, OrderStatusReceived)
}

func (o *Order) SetToInProgress() error {
	return o.transition(OrderStatusReceived, OrderStatusInProgress)
}

func (o *Order) SetToReady() error {
	return o.transition(OrderStatusInProgress, OrderStatusReady)
}

func (o *Order) SetToFinished() error {
	return o.transition(OrderStatusReady, OrderStatusFinished)
}

func (o *Order) SetToCanceled() error {
	return o.transition(OrderStatusPending, OrderStatusCanceled)
}

func (o *Order) transition(from, to OrderStatus) error {
	if o.status != from {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot change order status from %s to %s", o.status, to))
	}
	o.status = to
	o.touch()
	return nil
}

// RemoveItem drops an item from a PENDING order. The order keeps requiring at
// least one item, so removing the last one is rejected and the order is left
// unchanged.
func (o *Order) RemoveItem(itemID string) error {
	if o.status != OrderStatusPending {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot remove items from an order in %s status", o.status))
	}

	idx := -1
	for i, item := range o.items {
		if item.ID() == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order item with id %s not found", itemID))
	}

	remaining := make([]*OrderItem, 0, len(o.items)-1)
	remaining = append(remaining, o.items[:idx]...)
	remaining = append(remaining, o.items[idx+1:]...)
	if err := validateOrder(o.id, o.status, o.storeID, remaining); err != nil {
		return err
	}

	o.items = remaining
	o.touch()
	return nil
}

func (o *Order) AssociateCustomer(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return apperrors.NewInvalidArgument("customerId", "customer id is required")
	}
	if o.status == OrderStatusFinished || o.status == OrderStatusCanceled {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot associate a customer to an order in %s status", o.status))
	}
	if o.customerID != nil {
		return apperrors.NewConflictError("order already has a customer associated")
	}
	o.customerID = &customerID
	o.touch()
	return nil
}

func (o *Order) Props() OrderProps {
	items := make([]OrderItemProps, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.Props())
	}
	return OrderProps{
		ID:         o.id,
		CustomerID: copyOptional(o.customerID),
		Status:     o.status,
		StoreID:    o.storeID,
		TotemID:    copyOptional(o.totemID),
		Items:      items,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
	}
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyOptional(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
