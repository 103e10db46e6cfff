package repository

import (
	"context"
	"database/sql"
	"fmt"

	"palantir/internal/domain"
	"palantir/internal/errors"
	"palantir/internal/infrastructure/mysql"
)

type MySQLPaymentRepository struct {
	db *sql.DB
}

func NewMySQLPaymentRepository(db *sql.DB) *MySQLPaymentRepository {
	return &MySQLPaymentRepository{db: db}
}

const selectPayment = `
	SELECT id, orderId, storeId, paymentType, status, total, externalId, qrCode, platform, createdAt, updatedAt
	FROM Payments
`

func (r *MySQLPaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	return r.findOne(ctx, selectPayment+`WHERE id = ?`, id, fmt.Sprintf("payment with id %s not found", id))
}

// FindByOrderID returns the most recent payment attempt for the order.
func (r *MySQLPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	return r.findOne(ctx, selectPayment+`WHERE orderId = ? ORDER BY createdAt DESC LIMIT 1`, orderID, fmt.Sprintf("payment for order %s not found", orderID))
}

func (r *MySQLPaymentRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	return r.findOne(ctx, selectPayment+`WHERE externalId = ?`, externalID, fmt.Sprintf("payment with external id %s not found", externalID))
}

func (r *MySQLPaymentRepository) findOne(ctx context.Context, query string, arg string, notFoundMsg string) (*domain.Payment, error) {
	var (
		props                        domain.PaymentProps
		paymentType, status          string
		externalID, qrCode, platform sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&props.ID, &props.OrderID, &props.StoreID, &paymentType, &status, &props.Total,
		&externalID, &qrCode, &platform, &props.CreatedAt, &props.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("querying payment: %w", err)
	}

	props.PaymentType = domain.PaymentType(paymentType)
	props.Status = domain.PaymentStatus(status)
	props.ExternalID = nullableString(externalID)
	props.QrCode = nullableString(qrCode)
	props.Platform = nullableString(platform)

	payment, err := domain.RestorePayment(props)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("restoring payment %s", props.ID), err)
	}
	return payment, nil
}

func (r *MySQLPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	props := payment.Props()
	query := `
		INSERT INTO Payments (id, orderId, storeId, paymentType, status, total, externalId, qrCode, platform, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			status = VALUES(status),
			externalId = VALUES(externalId),
			qrCode = VALUES(qrCode),
			platform = VALUES(platform),
			updatedAt = VALUES(updatedAt)
	`

	_, err := r.db.ExecContext(ctx, query,
		props.ID, props.OrderID, props.StoreID, string(props.PaymentType), string(props.Status), props.Total,
		props.ExternalID, props.QrCode, props.Platform, props.CreatedAt, props.UpdatedAt,
	)
	if mysql.IsDuplicateEntryError(err) {
		return errors.NewConflictError("payment external reference is already in use")
	}
	if err != nil {
		return fmt.Errorf("upserting payment: %w", err)
	}

	return nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
