package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FuadJemal86/aquaErp-sub001/models"
)

// openTestDB backs the engine with a throwaway sqlite file so the real
// sweep and notification queries run against real rows.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "erp.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ProductStock{},
		&models.SalesCredit{},
		&models.BuyCredit{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewService(db, zerolog.Nop()), db
}
