// Package testutil provides an in-memory database for repository, usecase
// and HTTP tests.
package testutil

import (
	"testing"

	authdomain "taskmanager-backend/internal/auth/domain"
	taskdomain "taskmanager-backend/internal/task/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// Every new connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
