package sqlstore

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/migrate"
)

var testDBSeq int

func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "sqlstore-test", Output: io.Discard})
	testDBSeq++
	cfg := config.DBConfig{
		Driver: config.StorageBackendSQLite,
		DSN:    fmt.Sprintf("file:sqlstore_test_%d?mode=memory&cache=shared", testDBSeq),
	}

	client, err := db.New(ctx, cfg, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, migrate.Run(ctx, client))
	return New(client)
}

func sampleProduct(id string) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         "Banarasi Silk Saree",
		Category:     "silk",
		PiecesPerSet: 4,
		PricePerSet:  decimal.RequireFromString("1499.50"),
		Description:  "Handwoven with zari border",
		ImageURL:     "https://example.com/banarasi.jpg",
		InStock:      true,
	}
}

func sampleOrder(id, orderID string) *models.Order {
	return &models.Order{
		ID:              id,
		OrderID:         orderID,
		CustomerName:    "Asha Patel",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 MG Road",
		CustomerCity:    "Pune",
		CustomerState:   "Maharashtra",
		CustomerPincode: "411001",
		Items: []models.OrderLineSnapshot{
			{
				ProductID:    "prod_1",
				Name:         "Banarasi Silk Saree",
				Category:     "silk",
				PiecesPerSet: 4,
				PricePerSet:  decimal.RequireFromString("1499.50"),
				Quantity:     2,
			},
		},
		TotalSets:   2,
		TotalAmount: decimal.RequireFromString("2999.00"),
		OrderStatus: enums.OrderStatusPending,
	}
}

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Products().Create(ctx, sampleProduct("prod_1")))

	got, err := store.Products().GetByID(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Banarasi Silk Saree", got.Name)
	assert.True(t, got.PricePerSet.Equal(decimal.RequireFromString("1499.50")))
	assert.True(t, got.InStock)
	assert.False(t, got.CreatedAt.IsZero())

	newName := "Kanjivaram Silk Saree"
	inStock := false
	changed, err := store.Products().Update(ctx, "prod_1", storage.ProductPatch{
		Name:    &newName,
		InStock: &inStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err = store.Products().GetByID(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, newName, got.Name)
	assert.False(t, got.InStock)

	deleted, err := store.Products().Delete(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = store.Products().GetByID(ctx, "prod_1")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestProductCreateRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Products().Create(ctx, sampleProduct("prod_1")))

	err := store.Products().Create(ctx, sampleProduct("prod_1"))
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
}

func TestProductSearchMatchesNameAndCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	silk := sampleProduct("prod_1")
	cotton := sampleProduct("prod_2")
	cotton.Name = "Chanderi Cotton Saree"
	cotton.Category = "cotton"
	require.NoError(t, store.Products().Create(ctx, silk))
	require.NoError(t, store.Products().Create(ctx, cotton))

	byName, err := store.Products().GetAll(ctx, storage.ProductFilter{Search: "chanderi"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "prod_2", byName[0].ID)

	byCategory, err := store.Products().GetAll(ctx, storage.ProductFilter{Search: "SILK"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "prod_1", byCategory[0].ID)

	all, err := store.Products().GetAll(ctx, storage.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := store.Products().GetAll(ctx, storage.ProductFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestProductUpdateMissingRowReportsZeroChanges(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	name := "anything"
	changed, err := store.Products().Update(ctx, "prod_unknown", storage.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.Zero(t, changed)

	deleted, err := store.Products().Delete(ctx, "prod_unknown")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100")))

	got, err := store.Orders().GetByID(ctx, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "JSC100", got.OrderID)
	assert.Equal(t, enums.OrderStatusPending, got.OrderStatus)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "prod_1", got.Items[0].ProductID)
	assert.True(t, got.Items[0].PricePerSet.Equal(decimal.RequireFromString("1499.50")))
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("2999.00")))

	changed, err := store.Orders().UpdateStatus(ctx, "uuid-1", enums.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err = store.Orders().GetByID(ctx, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCompleted, got.OrderStatus)
}

func TestOrderCreateRejectsDuplicateOrderID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100")))

	err := store.Orders().Create(ctx, sampleOrder("uuid-2", "JSC100"))
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
}

func TestOrderListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100")))
	second := sampleOrder("uuid-2", "JSC200")
	second.OrderStatus = enums.OrderStatusCompleted
	require.NoError(t, store.Orders().Create(ctx, second))

	pending, err := store.Orders().GetAll(ctx, storage.OrderFilter{Status: enums.OrderStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "uuid-1", pending[0].ID)

	all, err := store.Orders().GetAll(ctx, storage.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderStatsAggregates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	count, err := store.Orders().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	revenue, err := store.Orders().TotalRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100")))
	second := sampleOrder("uuid-2", "JSC200")
	second.TotalAmount = decimal.RequireFromString("500.25")
	require.NoError(t, store.Orders().Create(ctx, second))

	count, err = store.Orders().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err = store.Orders().TotalRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.RequireFromString("3499.25")), revenue.String())
}

func TestSettingSeedAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	defaults := []models.Setting{
		{Key: "business_name", Value: "Jain Saree Center"},
		{Key: "smtp_port", Value: "587"},
	}
	require.NoError(t, store.Settings().Seed(ctx, defaults))

	changed, err := store.Settings().Update(ctx, "business_name", "Saree Emporium")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	// Re-seeding must not clobber the operator's edit.
	require.NoError(t, store.Settings().Seed(ctx, defaults))

	got, err := store.Settings().GetByKey(ctx, "business_name")
	require.NoError(t, err)
	assert.Equal(t, "Saree Emporium", got.Value)

	all, err := store.Settings().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	changed, err = store.Settings().Update(ctx, "missing_key", "x")
	require.NoError(t, err)
	assert.Zero(t, changed)

	_, err = store.Settings().GetByKey(ctx, "missing_key")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}
