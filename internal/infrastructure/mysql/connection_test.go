package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"palantir/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 3307, User: "app", Password: "p@ss", Name: "palantir"})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3307", parsed.Addr)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "p@ss", parsed.Passwd)
	assert.Equal(t, "palantir", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.MultiStatements)
}

func TestNewConnection_GivesUpAfterAttempts(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "127.0.0.1", Port: 1, User: "nobody", Name: "none", ConnectAttempts: 2}

	start := time.Now()
	db, err := NewConnection(context.Background(), cfg, zap.NewNop())

	assert.Nil(t, db)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
