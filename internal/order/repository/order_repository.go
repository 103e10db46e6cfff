package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"palantir/internal/domain"
	"palantir/internal/errors"
	"palantir/internal/infrastructure/mysql"
)

type MySQLOrderRepository struct {
	db               *sql.DB
	items            *MySQLOrderItemRepository
	logger           *zap.Logger
	txTimeout        time.Duration
	maxRetryAttempts int
}

func NewMySQLOrderRepository(db *sql.DB, logger *zap.Logger, txTimeout time.Duration, maxRetryAttempts int) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db:               db,
		items:            NewMySQLOrderItemRepository(db),
		logger:           logger,
		txTimeout:        txTimeout,
		maxRetryAttempts: maxRetryAttempts,
	}
}

type orderRow struct {
	ID         string
	CustomerID sql.NullString
	Status     string
	StoreID    string
	TotemID    sql.NullString
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, customerId, status, storeId, totemId, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var row orderRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID, &row.CustomerID, &row.Status, &row.StoreID, &row.TotemID, &row.CreatedAt, &row.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	items, err := r.items.FindByOrderIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return restoreOrder(row, items[id])
}

// ListByStore returns the store's orders, newest first, optionally filtered by status.
func (r *MySQLOrderRepository) ListByStore(ctx context.Context, storeID string, status *domain.OrderStatus) ([]*domain.Order, error) {
	query := `
		SELECT id, customerId, status, storeId, totemId, createdAt, updatedAt
		FROM Orders
		WHERE storeId = ?`
	args := []interface{}{storeID}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY createdAt DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orderRows []orderRow
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.Status, &row.StoreID, &row.TotemID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orderRows = append(orderRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	ids := make([]string, len(orderRows))
	for i, row := range orderRows {
		ids[i] = row.ID
	}
	items, err := r.items.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(orderRows))
	for _, row := range orderRows {
		order, err := restoreOrder(row, items[row.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// Save upserts the order row and replaces its items in one transaction,
// retrying on deadlock.
func (r *MySQLOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	return mysql.WithDeadlockRetry(ctx, r.maxRetryAttempts, r.logger, func(ctx context.Context) error {
		return r.save(ctx, order)
	})
}

func (r *MySQLOrderRepository) save(ctx context.Context, order *domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, r.txTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	props := order.Props()
	query := `
		INSERT INTO Orders (id, customerId, status, storeId, totemId, totalPrice, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			customerId = VALUES(customerId),
			status = VALUES(status),
			totemId = VALUES(totemId),
			totalPrice = VALUES(totalPrice),
			updatedAt = VALUES(updatedAt)
	`
	_, err = tx.ExecContext(txCtx, query,
		props.ID, props.CustomerID, string(props.Status), props.StoreID, props.TotemID,
		order.TotalPrice(), props.CreatedAt, props.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting order: %w", err)
	}

	if err := r.items.DeleteByOrderID(txCtx, tx, props.ID); err != nil {
		return err
	}
	for position, item := range order.Items() {
		if err := r.items.Insert(txCtx, tx, props.ID, position, item); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}
	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return nil
}

func restoreOrder(row orderRow, items []domain.OrderItemProps) (*domain.Order, error) {
	props := domain.OrderProps{
		ID:        row.ID,
		Status:    domain.OrderStatus(row.Status),
		StoreID:   row.StoreID,
		Items:     items,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.CustomerID.Valid {
		props.CustomerID = &row.CustomerID.String
	}
	if row.TotemID.Valid {
		props.TotemID = &row.TotemID.String
	}

	order, err := domain.RestoreOrder(props)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("restoring order %s", row.ID), err)
	}
	return order, nil
}
