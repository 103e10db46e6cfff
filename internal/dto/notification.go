package dto

import "time"

type SendNotificationRequest struct {
	Channel     string `json:"channel"`
	Destination string `json:"destination"`
	Message     string `json:"message"`
}

type NotificationDTO struct {
	ID           string     `json:"id"`
	Channel      string     `json:"channel"`
	Destination  string     `json:"destination"`
	Message      string     `json:"message"`
	Status       string     `json:"status"`
	SentAt       *time.Time `json:"sentAt,omitempty"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
