package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "palantir/internal/errors"
)

func mustEmail(t *testing.T, raw string) Email {
	t.Helper()
	email, err := NewEmail(raw)
	require.NoError(t, err)
	return email
}

func mustPhone(t *testing.T, raw string) Phone {
	t.Helper()
	phone, err := NewPhone(raw)
	require.NoError(t, err)
	return phone
}

func TestNewNotification_TrimsMessage(t *testing.T) {
	n, err := NewNotification(ChannelEmail, mustEmail(t, "test@example.com"), "  hello  ")
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID())
	assert.Equal(t, "hello", n.Message())
	assert.Equal(t, NotificationStatusPending, n.Status())
	assert.Equal(t, "test@example.com", n.Destination().String())
	_, sent := n.SentAt()
	assert.False(t, sent)
}

func TestNewNotification_DestinationMustMatchChannel(t *testing.T) {
	monitor, err := NewMonitorToken("kitchen-1")
	require.NoError(t, err)

	tests := []struct {
		name        string
		channel     Channel
		destination Destination
		expected    string
	}{
		{"email with phone", ChannelEmail, mustPhone(t, "+55 11 99999-0000"), "Email"},
		{"sms with email", ChannelSMS, mustEmail(t, "a@b.com"), "Phone"},
		{"whatsapp with monitor", ChannelWhatsApp, monitor, "Phone"},
		{"monitor with email", ChannelMonitor, mustEmail(t, "a@b.com"), "MonitorToken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNotification(tt.channel, tt.destination, "hi")
			assert.Nil(t, n)

			ve, ok := apperrors.IsValidationError(err)
			require.True(t, ok)
			assert.Contains(t, ve.Message, tt.expected)
		})
	}
}

func TestNewNotification_InvalidMessage(t *testing.T) {
	email := mustEmail(t, "a@b.com")

	_, err := NewNotification(ChannelEmail, email, "   ")
	assert.Error(t, err)

	_, err = NewNotification(ChannelEmail, email, strings.Repeat("x", 1001))
	assert.Error(t, err)

	n, err := NewNotification(ChannelEmail, email, " "+strings.Repeat("x", 1000)+" ")
	require.NoError(t, err)
	assert.Len(t, n.Message(), 1000)
}

func TestNewNotification_UnknownChannel(t *testing.T) {
	_, err := NewNotification("PIGEON", mustEmail(t, "a@b.com"), "hi")
	assert.Error(t, err)
}

func TestNotification_MarkAsSent(t *testing.T) {
	n, err := NewNotification(ChannelSMS, mustPhone(t, "11999990000"), "ready")
	require.NoError(t, err)

	require.NoError(t, n.MarkAsSent())

	assert.Equal(t, NotificationStatusSent, n.Status())
	sentAt, ok := n.SentAt()
	assert.True(t, ok)
	assert.False(t, sentAt.IsZero())
	_, hasError := n.ErrorMessage()
	assert.False(t, hasError)

	err = n.MarkAsSent()
	_, isInvalidState := apperrors.IsInvalidStateError(err)
	assert.True(t, isInvalidState)
}

func TestNotification_MarkAsFailed(t *testing.T) {
	n, err := NewNotification(ChannelWhatsApp, mustPhone(t, "11999990000"), "ready")
	require.NoError(t, err)

	err = n.MarkAsFailed("  ")
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Message, "required")
	assert.Equal(t, NotificationStatusPending, n.Status())

	require.NoError(t, n.MarkAsFailed("provider timeout"))
	assert.Equal(t, NotificationStatusFailed, n.Status())
	msg, ok := n.ErrorMessage()
	assert.True(t, ok)
	assert.Equal(t, "provider timeout", msg)
	_, sent := n.SentAt()
	assert.False(t, sent)

	err = n.MarkAsSent()
	_, isInvalidState := apperrors.IsInvalidStateError(err)
	assert.True(t, isInvalidState)

	err = n.MarkAsFailed("again")
	_, isInvalidState = apperrors.IsInvalidStateError(err)
	assert.True(t, isInvalidState)
}

func TestNotification_RoundTrip(t *testing.T) {
	monitor, err := NewMonitorToken("kitchen-1")
	require.NoError(t, err)

	sent, err := NewNotification(ChannelMonitor, monitor, "order ready")
	require.NoError(t, err)
	require.NoError(t, sent.MarkAsSent())

	failed, err := NewNotification(ChannelEmail, mustEmail(t, "a@b.com"), "order ready")
	require.NoError(t, err)
	require.NoError(t, failed.MarkAsFailed("smtp down"))

	for _, n := range []*Notification{sent, failed} {
		restored, err := RestoreNotification(n.Props())
		require.NoError(t, err)
		assert.Equal(t, n.Props(), restored.Props())
		assert.Equal(t, n.Destination(), restored.Destination())
	}
}

func TestRestoreNotification_InconsistentStatusFields(t *testing.T) {
	n, err := NewNotification(ChannelEmail, mustEmail(t, "a@b.com"), "hi")
	require.NoError(t, err)
	require.NoError(t, n.MarkAsSent())

	props := n.Props()
	props.Status = NotificationStatusPending
	_, err = RestoreNotification(props)
	assert.Error(t, err)

	props = n.Props()
	msg := "boom"
	props.ErrorMessage = &msg
	_, err = RestoreNotification(props)
	assert.Error(t, err)
}

func TestParseDestination(t *testing.T) {
	d, err := ParseDestination(ChannelEmail, " User@Example.com ")
	require.NoError(t, err)
	assert.IsType(t, Email{}, d)
	assert.Equal(t, "user@example.com", d.String())

	d, err = ParseDestination(ChannelSMS, "(11) 99999-0000")
	require.NoError(t, err)
	assert.IsType(t, Phone{}, d)

	d, err = ParseDestination(ChannelMonitor, "kitchen")
	require.NoError(t, err)
	assert.IsType(t, MonitorToken{}, d)

	d, err = ParseDestination(ChannelEmail, "not-an-email")
	assert.Nil(t, d)
	assert.Error(t, err)
}
