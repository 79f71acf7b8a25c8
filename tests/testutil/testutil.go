package testutil

import (
	"os"
	"testing"

	"github.com/kendall-kelly/laundry-api/config"
	"github.com/kendall-kelly/laundry-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// TestConfig returns a configuration for an in-memory sqlite store
func TestConfig() *config.Config {
	return &config.Config{
		DatabaseDriver:     config.DriverSQLite,
		DatabaseURL:        ":memory:",
		Port:               "8080",
		GoEnv:              "test",
		LogLevel:           "disabled",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
}

// OpenTestDB opens a fresh in-memory database with every table migrated.
// The pool is pinned to one connection: each sqlite memory connection is its
// own database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), config.GormConfig(TestConfig()))
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
