// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"nocturna/internal/db"
	"nocturna/internal/model"
)

// VenueID is the venue every fixture row belongs to.
const VenueID uint = 1

// NewDB returns a migrated in-memory SQLite database holding one venue.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := gormDB.Create(&model.Venue{ID: VenueID, Name: "Nocturna", Slug: "nocturna", Timezone: "Europe/Madrid"}).Error; err != nil {
		t.Fatalf("seed venue: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}
