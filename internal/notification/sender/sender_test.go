package sender

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palantir/internal/domain"
)

type mockWriter struct {
	messages []kafkago.Message
	err      error
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func TestLogSender_Send(t *testing.T) {
	email, err := domain.NewEmail("client@example.com")
	require.NoError(t, err)

	s := NewLogSender(domain.ChannelEmail, zap.NewNop())
	assert.NoError(t, s.Send(context.Background(), email, "hello"))
}

func TestLogSender_CanceledContext(t *testing.T) {
	email, err := domain.NewEmail("client@example.com")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewLogSender(domain.ChannelEmail, zap.NewNop())
	assert.ErrorIs(t, s.Send(ctx, email, "hello"), context.Canceled)
}

func TestMonitorSender_Send(t *testing.T) {
	token, err := domain.NewMonitorToken("monitor-1")
	require.NoError(t, err)
	w := &mockWriter{}

	s := NewMonitorSender(w)
	require.NoError(t, s.Send(context.Background(), token, "Order 42 is READY"))

	require.Len(t, w.messages, 1)
	assert.Equal(t, "monitor-1", string(w.messages[0].Key))
	var payload monitorMessage
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &payload))
	assert.Equal(t, "Order 42 is READY", payload.Message)
}

func TestMonitorSender_WriterError(t *testing.T) {
	token, err := domain.NewMonitorToken("monitor-1")
	require.NoError(t, err)

	s := NewMonitorSender(&mockWriter{err: errors.New("broker down")})
	assert.Error(t, s.Send(context.Background(), token, "x"))
}
