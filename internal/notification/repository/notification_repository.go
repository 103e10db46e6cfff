package repository

import (
	"context"
	"database/sql"
	"fmt"

	"palantir/internal/domain"
	"palantir/internal/errors"
)

type MySQLNotificationRepository struct {
	db *sql.DB
}

func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

func (r *MySQLNotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `
		SELECT id, channel, destination, message, status, sentAt, errorMessage, createdAt, updatedAt
		FROM Notifications
		WHERE id = ?
	`

	var (
		props           domain.NotificationProps
		channel, status string
		sentAt          sql.NullTime
		errorMessage    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&props.ID, &channel, &props.Destination, &props.Message, &status,
		&sentAt, &errorMessage, &props.CreatedAt, &props.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("notification with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying notification by id: %w", err)
	}

	props.Channel = domain.Channel(channel)
	props.Status = domain.NotificationStatus(status)
	if sentAt.Valid {
		t := sentAt.Time
		props.SentAt = &t
	}
	if errorMessage.Valid {
		msg := errorMessage.String
		props.ErrorMessage = &msg
	}

	notification, err := domain.RestoreNotification(props)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("restoring notification %s", id), err)
	}
	return notification, nil
}

func (r *MySQLNotificationRepository) Save(ctx context.Context, notification *domain.Notification) error {
	props := notification.Props()
	query := `
		INSERT INTO Notifications (id, channel, destination, message, status, sentAt, errorMessage, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			status = VALUES(status),
			sentAt = VALUES(sentAt),
			errorMessage = VALUES(errorMessage),
			updatedAt = VALUES(updatedAt)
	`

	_, err := r.db.ExecContext(ctx, query,
		props.ID, string(props.Channel), props.Destination, props.Message, string(props.Status),
		props.SentAt, props.ErrorMessage, props.CreatedAt, props.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting notification: %w", err)
	}
	return nil
}
