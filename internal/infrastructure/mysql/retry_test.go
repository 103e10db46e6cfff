package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "palantir/internal/errors"
)

func TestWithDeadlockRetry_SucceedsAfterDeadlock(t *testing.T) {
	calls := 0
	err := WithDeadlockRetry(context.Background(), 3, zap.NewNop(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &mysql.MySQLError{Number: 1213}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithDeadlockRetry_MaxRetriesExceeded(t *testing.T) {
	calls := 0
	err := WithDeadlockRetry(context.Background(), 2, zap.NewNop(), func(ctx context.Context) error {
		calls++
		return &mysql.MySQLError{Number: 1205}
	})

	_, ok := apperrors.IsDeadlockError(err)
	assert.True(t, ok)
	assert.Equal(t, 2, calls)
}

func TestWithDeadlockRetry_OtherErrorNotRetried(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := WithDeadlockRetry(context.Background(), 3, zap.NewNop(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWithDeadlockRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithDeadlockRetry(ctx, 3, zap.NewNop(), func(ctx context.Context) error {
		return &mysql.MySQLError{Number: 1213}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsDuplicateEntryError(t *testing.T) {
	assert.True(t, IsDuplicateEntryError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsDuplicateEntryError(&mysql.MySQLError{Number: 1213}))
	assert.False(t, IsDuplicateEntryError(errors.New("other")))
}
