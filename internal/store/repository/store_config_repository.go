package repository

import (
	"context"
	"database/sql"
	"fmt"

	"palantir/internal/domain"
	"palantir/internal/errors"
)

type MySQLStoreConfigRepository struct {
	db *sql.DB
}

func NewMySQLStoreConfigRepository(db *sql.DB) *MySQLStoreConfigRepository {
	return &MySQLStoreConfigRepository{db: db}
}

func (r *MySQLStoreConfigRepository) FindByStoreID(ctx context.Context, storeID string) (*domain.StoreConfig, error) {
	query := `
		SELECT id, storeId, monitorToken, notifyCustomer, createdAt, updatedAt
		FROM StoreConfig
		WHERE storeId = ?
	`

	var config domain.StoreConfig
	err := r.db.QueryRowContext(ctx, query, storeID).Scan(
		&config.ID, &config.StoreID, &config.MonitorToken, &config.NotifyCustomer,
		&config.CreatedAt, &config.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("store config for store %s not found", storeID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying store config by store id: %w", err)
	}

	return &config, nil
}

// FindOrDefault falls back to DefaultStoreConfig when the store has no row.
func (r *MySQLStoreConfigRepository) FindOrDefault(ctx context.Context, storeID string) (domain.StoreConfig, error) {
	config, err := r.FindByStoreID(ctx, storeID)
	if _, ok := errors.IsNotFoundError(err); ok {
		return domain.DefaultStoreConfig(storeID), nil
	}
	if err != nil {
		return domain.StoreConfig{}, err
	}
	return *config, nil
}
