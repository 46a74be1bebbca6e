package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"plateforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// a named shared-cache in-memory db so every pooled connection sees the
	// same data
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
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

func TestOptionRepositoryCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewOptionRepository[model.Badge](newTestDB(t))

	first := &model.Badge{Name: "GB", Code: "gb", Price: 4.99}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.Badge{Name: "EU", Code: "eu", Price: 4.99}
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "gb", recs[0].Code)
	assert.Equal(t, "eu", recs[1].Code)
}

func TestOptionRepositoryGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewOptionRepository[model.TextStyle](newTestDB(t))

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOptionRepositorySaveChangesOnlyThatRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewOptionRepository[model.PlateSurround](newTestDB(t))

	keep := &model.PlateSurround{Name: "None", Style: "none", Price: 0}
	require.NoError(t, repo.Create(ctx, keep))
	edit := &model.PlateSurround{Name: "Standard", Style: "standard", Price: 5.99}
	require.NoError(t, repo.Create(ctx, edit))

	edit.Price = 6.49
	require.NoError(t, repo.Save(ctx, edit))

	recs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 0.0, recs[0].Price)
	assert.Equal(t, 6.49, recs[1].Price)
}

func TestOptionRepositoryExistsWhere(t *testing.T) {
	ctx := context.Background()
	repo := NewOptionRepository[model.BorderColor](newTestDB(t))

	rec := &model.BorderColor{Name: "Yellow", HexCode: "#FFD700"}
	require.NoError(t, repo.Create(ctx, rec))

	taken, err := repo.ExistsWhere(ctx, "hex_code = ?", "#FFD700")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsWhere(ctx, "hex_code = ? AND id <> ?", "#FFD700", rec.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsWhere(ctx, "hex_code = ?", "#000000")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	selections, err := NewOptionRepository[model.PlateSelection](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, selections, 3)

	badges, err := NewOptionRepository[model.Badge](db).List(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 4)
	assert.Equal(t, "none", badges[3].Code)

	badgeColors, err := NewOptionRepository[model.BadgeColor](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, badgeColors, 5)

	textStyles, err := NewOptionRepository[model.TextStyle](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, textStyles, 3)

	borderColors, err := NewOptionRepository[model.BorderColor](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, borderColors, 4)

	surrounds, err := NewOptionRepository[model.PlateSurround](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, surrounds, 3)

	plateTypes, err := NewOptionRepository[model.PlateType](db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, plateTypes, 3)
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	paymentID := "PAYPAL-123"
	order := &model.Order{
		Customization: model.PlateCustomization{
			RegistrationNumber: "AB12 CDE",
			PlateSelection:     "front",
			PlateType:          "standard",
			Badge:              "gb",
			BadgeColor:         "#FFD700",
			TextStyle:          "standard",
			BorderColor:        "#FFD700",
			PlateSurround:      "none",
		},
		OrderItems: []model.OrderItem{
			{ID: 1, Name: "Front Only", Price: 19.99},
			{ID: 2, Name: "GB Badge", Price: 4.99},
		},
		TotalPrice:    24.98,
		PaymentStatus: model.PaymentStatusCompleted,
		PaymentID:     &paymentID,
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Customization, got.Customization)
	assert.Equal(t, order.OrderItems, got.OrderItems)
	assert.Equal(t, 24.98, got.TotalPrice)
	assert.Equal(t, model.PaymentStatusCompleted, got.PaymentStatus)
	require.NotNil(t, got.PaymentID)
	assert.Equal(t, paymentID, *got.PaymentID)
}

func TestOrderRepositoryGetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	_, err := repo.GetByID(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepositoryListAllKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	for i := 0; i < 4; i++ {
		order := &model.Order{
			Customization: model.PlateCustomization{RegistrationNumber: fmt.Sprintf("REG %d", i)},
			TotalPrice:    19.99,
			PaymentStatus: model.PaymentStatusPending,
		}
		require.NoError(t, repo.Create(ctx, order))
	}

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	for i, o := range orders {
		assert.Equal(t, uint(i+1), o.ID)
		assert.Equal(t, fmt.Sprintf("REG %d", i), o.Customization.RegistrationNumber)
	}
}

func TestOrderRepositoryListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &model.Order{
			Customization: model.PlateCustomization{RegistrationNumber: fmt.Sprintf("REG %d", i)},
			PaymentStatus: model.PaymentStatusPending,
		}))
	}

	recent, err := repo.ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, uint(7), recent[0].ID)
	assert.Equal(t, uint(3), recent[4].ID)
}
