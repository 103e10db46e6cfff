package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "palantir/internal/errors"
)

const maxNotificationMessageLength = 1000

type Channel string

const (
	ChannelEmail    Channel = "EMAIL"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelSMS      Channel = "SMS"
	ChannelMonitor  Channel = "MONITOR"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelSMS, ChannelMonitor:
		return true
	}
	return false
}

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusPending, NotificationStatusSent, NotificationStatusFailed:
		return true
	}
	return false
}

// Destination is the closed set of notification targets: Email, Phone and
// MonitorToken.
type Destination interface {
	String() string
	isDestination()
}

// MonitorToken identifies an on-site order monitor.
type MonitorToken struct {
	value string
}

func NewMonitorToken(raw string) (MonitorToken, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return MonitorToken{}, apperrors.NewInvalidArgument("destination", "monitor token is required")
	}
	return MonitorToken{value: value}, nil
}

func (m MonitorToken) String() string {
	return m.value
}

func (MonitorToken) isDestination() {}

// ParseDestination builds the destination value object the channel expects.
func ParseDestination(channel Channel, raw string) (Destination, error) {
	var (
		destination Destination
		err         error
	)
	switch channel {
	case ChannelEmail:
		destination, err = NewEmail(raw)
	case ChannelWhatsApp, ChannelSMS:
		destination, err = NewPhone(raw)
	case ChannelMonitor:
		destination, err = NewMonitorToken(raw)
	default:
		return nil, apperrors.NewInvalidArgument("channel", fmt.Sprintf("channel %q is invalid", channel))
	}
	if err != nil {
		return nil, err
	}
	return destination, nil
}

func validateDestination(channel Channel, destination Destination) error {
	var ok bool
	var expected string
	switch channel {
	case ChannelEmail:
		_, ok = destination.(Email)
		expected = "Email"
	case ChannelWhatsApp, ChannelSMS:
		_, ok = destination.(Phone)
		expected = "Phone"
	case ChannelMonitor:
		_, ok = destination.(MonitorToken)
		expected = "MonitorToken"
	default:
		return apperrors.NewInvalidArgument("channel", fmt.Sprintf("channel %q is invalid", channel))
	}
	if !ok {
		return apperrors.NewInvalidArgument("destination", fmt.Sprintf("destination for channel %s must be of type %s", channel, expected))
	}
	return nil
}

// Notification is a single outbound message. It leaves PENDING exactly once.
type Notification struct {
	id           string
	channel      Channel
	destination  Destination
	message      string
	status       NotificationStatus
	sentAt       *time.Time
	errorMessage *string
	createdAt    time.Time
	updatedAt    time.Time
}

type NotificationProps struct {
	ID           string
	Channel      Channel
	Destination  string
	Message      string
	Status       NotificationStatus
	SentAt       *time.Time
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewNotification(channel Channel, destination Destination, message string) (*Notification, error) {
	if destination == nil {
		return nil, apperrors.NewInvalidArgument("destination", "destination is required")
	}
	if err := validateDestination(channel, destination); err != nil {
		return nil, err
	}
	message, err := normalizeMessage(message)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Notification{
		id:          uuid.NewString(),
		channel:     channel,
		destination: destination,
		message:     message,
		status:      NotificationStatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func RestoreNotification(props NotificationProps) (*Notification, error) {
	id := strings.TrimSpace(props.ID)
	if id == "" {
		return nil, apperrors.NewInvalidArgument("id", "notification id is required")
	}
	destination, err := ParseDestination(props.Channel, props.Destination)
	if err != nil {
		return nil, err
	}
	message, err := normalizeMessage(props.Message)
	if err != nil {
		return nil, err
	}
	if !props.Status.IsValid() {
		return nil, apperrors.NewInvalidArgument("status", fmt.Sprintf("notification status %q is invalid", props.Status))
	}
	if (props.SentAt != nil) != (props.Status == NotificationStatusSent) {
		return nil, apperrors.NewInvalidArgument("sentAt", "sentAt must be set only for SENT notifications")
	}
	errorMessage := normalizeOptional(props.ErrorMessage)
	if (errorMessage != nil) != (props.Status == NotificationStatusFailed) {
		return nil, apperrors.NewInvalidArgument("errorMessage", "errorMessage must be set only for FAILED notifications")
	}

	var sentAt *time.Time
	if props.SentAt != nil {
		t := *props.SentAt
		sentAt = &t
	}
	return &Notification{
		id:           id,
		channel:      props.Channel,
		destination:  destination,
		message:      message,
		status:       props.Status,
		sentAt:       sentAt,
		errorMessage: errorMessage,
		createdAt:    props.CreatedAt,
		updatedAt:    props.UpdatedAt,
	}, nil
}

func normalizeMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperrors.NewInvalidArgument("message", "message is required")
	}
	if utf8.RuneCountInString(message) > maxNotificationMessageLength {
		return "", apperrors.NewInvalidArgument("message", fmt.Sprintf("message must have at most %d characters", maxNotificationMessageLength))
	}
	return message, nil
}

func (n *Notification) ID() string                 { return n.id }
func (n *Notification) Channel() Channel           { return n.channel }
func (n *Notification) Destination() Destination   { return n.destination }
func (n *Notification) Message() string            { return n.message }
func (n *Notification) Status() NotificationStatus { return n.status }
func (n *Notification) CreatedAt() time.Time       { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time       { return n.updatedAt }

func (n *Notification) SentAt() (time.Time, bool) {
	if n.sentAt == nil {
		return time.Time{}, false
	}
	return *n.sentAt, true
}

func (n *Notification) ErrorMessage() (string, bool) {
	if n.errorMessage == nil {
		return "", false
	}
	return *n.errorMessage, true
}

func (n *Notification) MarkAsSent() error {
	if n.status != NotificationStatusPending {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot mark a %s notification as sent", n.status))
	}
	now := time.Now().UTC()
	n.status = NotificationStatusSent
	n.sentAt = &now
	n.updatedAt = now
	return nil
}

func (n *Notification) MarkAsFailed(errorMessage string) error {
	errorMessage = strings.TrimSpace(errorMessage)
	if errorMessage == "" {
		return apperrors.NewInvalidArgument("errorMessage", "error message is required")
	}
	if n.status != NotificationStatusPending {
		return apperrors.NewInvalidStateError(fmt.Sprintf("cannot mark a %s notification as failed", n.status))
	}
	n.status = NotificationStatusFailed
	n.errorMessage = &errorMessage
	n.updatedAt = time.Now().UTC()
	return nil
}

func (n *Notification) Props() NotificationProps {
	var sentAt *time.Time
	if n.sentAt != nil {
		t := *n.sentAt
		sentAt = &t
	}
	return NotificationProps{
		ID:           n.id,
		Channel:      n.channel,
		Destination:  n.destination.String(),
		Message:      n.message,
		Status:       n.status,
		SentAt:       sentAt,
		ErrorMessage: copyOptional(n.errorMessage),
		CreatedAt:    n.createdAt,
		UpdatedAt:    n.updatedAt,
	}
}
