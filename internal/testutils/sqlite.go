package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"farm-assets-backend/internal/database"

	"gorm.io/gorm"
)

var sqliteSeq atomic.Uint64

// NewSQLiteDB returns a migrated in-memory database private to t, with foreign keys enforced.
// A single connection keeps every statement on the same in-memory store.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", sqliteSeq.Add(1))
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       database.DriverSQLite,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
