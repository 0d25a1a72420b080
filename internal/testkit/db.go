// Package testkit builds throwaway databases and fixtures for tests.
package testkit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/config"
	"catalog/internal/infra"
	"catalog/internal/models/db_models"
)

// NewSQLiteDB opens a migrated SQLite database in a temp dir that is removed
// when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	}
	db, err := infra.OpenDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db, zap.NewNop()) })

	require.NoError(t, infra.Migrate(context.Background(), db))
	return db
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) db_models.Category {
	t.Helper()
	c := db_models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func CreateProduct(t testing.TB, db *gorm.DB, name, price, company string, category db_models.Category) db_models.Product {
	t.Helper()
	p := db_models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Company:    company,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Omit("Category").Create(&p).Error)
	p.Category = category
	return p
}
