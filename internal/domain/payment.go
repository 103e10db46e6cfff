package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "palantir/internal/errors"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRefused  PaymentStatus = "REFUSED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRefused:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeQR   PaymentType = "QR"
	PaymentTypePix  PaymentType = "PIX"
	PaymentTypeCard PaymentType = "CARD"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeQR, PaymentTypePix, PaymentTypeCard:
		return true
	}
	return false
}

// IsQRBased reports whether the provider answers this type with a QR code
// the customer scans.
func (t PaymentType) IsQRBased() bool {
	return t == PaymentTypeQR || t == PaymentTypePix
}

// Payment is one charge attempt for an order.
type Payment struct {
	id          string
	orderID     string
	storeID     string
	paymentType PaymentType
	status      PaymentStatus
	total       decimal.Decimal
	externalID  *string
	qrCode      *string
	platform    *string
	createdAt   time.Time
	updatedAt   time.Time
}

type PaymentProps struct {
	ID          string
	OrderID     string
	StoreID     string
	PaymentType PaymentType
	Status      PaymentStatus
	Total       decimal.Decimal
	ExternalID  *string
	QrCode      *string
	Platform    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPayment(orderID, storeID string, paymentType PaymentType, total decimal.Decimal) (*Payment, error) {
	now := time.Now().UTC()
	return RestorePayment(PaymentProps{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		StoreID:     storeID,
		PaymentType: paymentType,
		Status:      PaymentStatusPending,
		Total:       total,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func RestorePayment(props PaymentProps) (*Payment, error) {
	p := &Payment{
		id:          strings.TrimSpace(props.ID),
		orderID:     strings.TrimSpace(props.OrderID),
		storeID:     strings.TrimSpace(props.StoreID),
		paymentType: props.PaymentType,
		status:      props.Status,
		total:       props.Total,
		externalID:  normalizeOptional(props.ExternalID),
		qrCode:      normalizeOptional(props.QrCode),
		platform:    normalizeOptional(props.Platform),
		createdAt:   props.CreatedAt,
		updatedAt:   props.UpdatedAt,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) validate() error {
	var details []apperrors.ValidationDetail
	if p.id == "" {
		details = append(details, apperrors.ValidationDetail{Field: "id", Message: "payment id is required"})
	}
	if p.orderID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "orderId", Message: "order id is required"})
	}
	if p.storeID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "storeId", Message: "store id is required"})
	}
	if !p.paymentType.IsValid() {
		details = append(details, apperrors.ValidationDetail{Field: "paymentType", Message: fmt.Sprintf("payment type %q is invalid", p.paymentType)})
	}
	if !p.status.IsValid() {
		details = append(details, apperrors.ValidationDetail{Field: "status", Message: fmt.Sprintf("payment status %q is invalid", p.status)})
	}
	if !p.total.IsPositive() {
		details = append(details, apperrors.ValidationDetail{Field: "total", Message: "total must be greater than zero"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid payment", details...)
	}
	return nil
}

func (p *Payment) ID() string                { return p.id }
func (p *Payment) OrderID() string           { return p.orderID }
func (p *Payment) StoreID() string           { return p.storeID }
func (p *Payment) PaymentType() PaymentType  { return p.paymentType }
func (p *Payment) Status() PaymentStatus     { return p.status }
func (p *Payment) Total() decimal.Decimal    { return p.total }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time      { return p.updatedAt }
func (p *Payment) IsApproved() bool          { return p.status == PaymentStatusApproved }
func (p *Payment) ExternalID() *string       { return copyOptional(p.externalID) }
func (p *Payment) QrCode() *string           { return copyOptional(p.qrCode) }
func (p *Payment) Platform() *string         { return copyOptional(p.platform) }

func (p *Payment) Approve() error {
	return p.resolve(PaymentStatusApproved)
}

func (p *Payment) Reject() error {
	return p.resolve(PaymentStatusRefused)
}

func (p *Payment) resolve(to PaymentStatus) error {
	if p.status != PaymentStatusPending {
		return apperrors.NewConflictError(fmt.Sprintf("payment is already %s", p.status))
	}
	p.status = to
	p.touch()
	return nil
}

// AssociateExternal records the provider reference for this payment. It can
// only happen once.
func (p *Payment) AssociateExternal(externalID, platform, qrCode string) error {
	if p.externalID != nil || p.platform != nil {
		return apperrors.NewConflictError("payment is already associated with an external reference")
	}

	externalID = strings.TrimSpace(externalID)
	platform = strings.TrimSpace(platform)
	var details []apperrors.ValidationDetail
	if externalID == "" {
		details = append(details, apperrors.ValidationDetail{Field: "externalId", Message: "external id is required"})
	}
	if platform == "" {
		details = append(details, apperrors.ValidationDetail{Field: "platform", Message: "platform is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid external reference", details...)
	}

	p.externalID = &externalID
	p.platform = &platform
	if p.paymentType.IsQRBased() {
		p.qrCode = normalizeOptional(&qrCode)
	}
	p.touch()
	return nil
}

func (p *Payment) Props() PaymentProps {
	return PaymentProps{
		ID:          p.id,
		OrderID:     p.orderID,
		StoreID:     p.storeID,
		PaymentType: p.paymentType,
		Status:      p.status,
		Total:       p.total,
		ExternalID:  copyOptional(p.externalID),
		QrCode:      copyOptional(p.qrCode),
		Platform:    copyOptional(p.platform),
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}
