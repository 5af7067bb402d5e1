// internal/services/service_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alnajjar/makhzan/internal/database"
	"github.com/alnajjar/makhzan/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database shared across queries.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))

	return db
}

func addProductFixture(t *testing.T, db *gorm.DB, serial, productType string, quantity int) *models.Product {
	t.Helper()

	product := &models.Product{
		Category:     "ضاغط",
		Model:        "LG-" + serial,
		SerialNumber: serial,
		Capacity:     "3HP",
		Displacement: "12cc",
		Color:        "أبيض",
		Quantity:     quantity,
		Location:     "A1",
		Type:         productType,
	}
	require.NoError(t, db.Create(product).Error)

	return product
}
