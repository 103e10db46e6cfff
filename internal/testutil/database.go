package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"palantir/internal/infrastructure/mysql"
)

const defaultTestDSN = "root:@tcp(localhost:3306)/palantir_test?parseTime=true&multiStatements=true"

// SetupTestDB opens the integration database named by PALANTIR_TEST_DSN
// (default: palantir_test on localhost) and skips the test when it is not
// reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("PALANTIR_TEST_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables applies the embedded migrations.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
}

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Payments", "Notifications", "StoreConfig", "Customers", "Product", "Categories"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}
