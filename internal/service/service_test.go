package service

import (
	"fmt"
	"strings"
	"testing"

	"plateforge/internal/model"
	"plateforge/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.PlateSelection{},
		&model.PlateType{},
		&model.Badge{},
		&model.BadgeColor{},
		&model.TextStyle{},
		&model.BorderColor{},
		&model.PlateSurround{},
		&model.Order{},
	))

	return db
}

func newCatalogService(t *testing.T, db *gorm.DB, seed bool) CatalogService {
	t.Helper()

	if seed {
		require.NoError(t, repository.SeedCatalog(db))
	}

	return NewCatalogService(
		repository.NewOptionRepository[model.PlateSelection](db),
		repository.NewOptionRepository[model.PlateType](db),
		repository.NewOptionRepository[model.Badge](db),
		repository.NewOptionRepository[model.BadgeColor](db),
		repository.NewOptionRepository[model.TextStyle](db),
		repository.NewOptionRepository[model.BorderColor](db),
		repository.NewOptionRepository[model.PlateSurround](db),
	)
}
