package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pos/entity"
	"pos/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Department{}, &entity.MenuItem{},
		&entity.Table{}, &entity.TableOrder{},
	))
	return db
}

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	db := newTestDB(t)
	return NewCatalogService(
		repository.NewMenuItemRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewDepartmentRepository(db),
	)
}
