package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type InitiatePaymentRequest struct {
	OrderID     string `json:"orderId"`
	PaymentType string `json:"paymentType"`
}

// PaymentWebhookRequest is the provider callback body.
type PaymentWebhookRequest struct {
	ExternalID string `json:"externalId"`
	Status     string `json:"status"`
}

type PaymentDTO struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	StoreID     string          `json:"storeId"`
	PaymentType string          `json:"paymentType"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	ExternalID  *string         `json:"externalId,omitempty"`
	QrCode      *string         `json:"qrCode,omitempty"`
	Platform    *string         `json:"platform,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
