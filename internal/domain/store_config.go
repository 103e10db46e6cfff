package domain

import "time"

// StoreConfig holds per-store notification settings.
type StoreConfig struct {
	ID             int
	StoreID        string
	MonitorToken   string
	NotifyCustomer bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultStoreConfig is used when a store has no row in StoreConfig: the
// store id doubles as its monitor token.
func DefaultStoreConfig(storeID string) StoreConfig {
	return StoreConfig{
		StoreID:        storeID,
		MonitorToken:   storeID,
		NotifyCustomer: true,
	}
}
