package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	TotemID    *string           `json:"totemId,omitempty"`
	CustomerID *string           `json:"customerId,omitempty"`
	Items      []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LinkCustomerRequest struct {
	CustomerID string `json:"customerId"`
}

type OrderDTO struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"storeId"`
	CustomerID *string         `json:"customerId,omitempty"`
	TotemID    *string         `json:"totemId,omitempty"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Items      []OrderItemDTO  `json:"items"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type OrderItemDTO struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}
