// Package testutil provides test helpers for setting up migrated SQLite
// databases, creating fixtures, and making assertions.
package testutil

import (
	"path/filepath"
	"testing"

	"budgetly/internal/config"
	"budgetly/internal/database"

	"gorm.io/gorm"
)

// SetupTestDB creates a file-backed SQLite database in the test's temp dir
// and applies the embedded SQL migrations, so tests see the production schema
// including its CHECK constraints and unique indexes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "budgetly_test.db"),
	}
	manager, err := database.NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return manager.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
