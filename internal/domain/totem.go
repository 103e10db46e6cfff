package domain

// Totem is a self-service kiosk registered with the payment provider.
type Totem struct {
	ID      string
	StoreID string
	Name    string
}
