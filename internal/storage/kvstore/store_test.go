package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/enums"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis/redistest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(redis.NewWithCmdable(redistest.NewFake()))
}

func sampleProduct(id string, createdAt time.Time) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         "Banarasi Silk Saree",
		Category:     "silk",
		PiecesPerSet: 4,
		PricePerSet:  decimal.RequireFromString("1499.50"),
		ImageURL:     "https://example.com/banarasi.jpg",
		InStock:      true,
		CreatedAt:    createdAt,
	}
}

func sampleOrder(id, orderID string, placedAt time.Time) *models.Order {
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
		OrderDate:   placedAt,
	}
}

func TestProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Products().Create(ctx, sampleProduct("prod_1", time.Time{})))

	got, err := store.Products().GetByID(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, "Banarasi Silk Saree", got.Name)
	assert.True(t, got.PricePerSet.Equal(decimal.RequireFromString("1499.50")))
	assert.False(t, got.CreatedAt.IsZero(), "creation stamps the document")

	err = store.Products().Create(ctx, sampleProduct("prod_1", time.Time{}))
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
}

func TestProductListNewestFirstWithSearchAndLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	older := sampleProduct("prod_1", base)
	newer := sampleProduct("prod_2", base.Add(time.Hour))
	newer.Name = "Chanderi Cotton Saree"
	newer.Category = "cotton"
	require.NoError(t, store.Products().Create(ctx, older))
	require.NoError(t, store.Products().Create(ctx, newer))

	all, err := store.Products().GetAll(ctx, storage.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "prod_2", all[0].ID)
	assert.Equal(t, "prod_1", all[1].ID)

	matched, err := store.Products().GetAll(ctx, storage.ProductFilter{Search: "COTTON"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "prod_2", matched[0].ID)

	limited, err := store.Products().GetAll(ctx, storage.ProductFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "prod_2", limited[0].ID)
}

func TestProductUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Products().Create(ctx, sampleProduct("prod_1", time.Time{})))

	price := decimal.RequireFromString("1799.00")
	inStock := false
	changed, err := store.Products().Update(ctx, "prod_1", storage.ProductPatch{
		PricePerSet: &price,
		InStock:     &inStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	got, err := store.Products().GetByID(ctx, "prod_1")
	require.NoError(t, err)
	assert.True(t, got.PricePerSet.Equal(price))
	assert.False(t, got.InStock)
	assert.Equal(t, "Banarasi Silk Saree", got.Name, "untouched fields survive")

	changed, err = store.Products().Update(ctx, "prod_missing", storage.ProductPatch{InStock: &inStock})
	require.NoError(t, err)
	assert.Zero(t, changed)

	deleted, err := store.Products().Delete(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := store.Products().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	deleted, err = store.Products().Delete(ctx, "prod_1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestOrderCreateGuardsIdentifier(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100", time.Time{})))

	err := store.Orders().Create(ctx, sampleOrder("uuid-2", "JSC100", time.Time{}))
	assert.True(t, errors.IsCode(err, errors.CodeConflict))

	got, err := store.Orders().GetByID(ctx, "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "JSC100", got.OrderID)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].PricePerSet.Equal(decimal.RequireFromString("1499.50")))
	assert.False(t, got.OrderDate.IsZero())
}

func TestOrderListFilterAndStatusUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100", base)))
	second := sampleOrder("uuid-2", "JSC200", base.Add(time.Minute))
	require.NoError(t, store.Orders().Create(ctx, second))

	changed, err := store.Orders().UpdateStatus(ctx, "uuid-1", enums.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	pending, err := store.Orders().GetAll(ctx, storage.OrderFilter{Status: enums.OrderStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "uuid-2", pending[0].ID)

	all, err := store.Orders().GetAll(ctx, storage.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "uuid-2", all[0].ID, "newest first")

	changed, err = store.Orders().UpdateStatus(ctx, "uuid-missing", enums.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestOrderAggregates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Orders().Create(ctx, sampleOrder("uuid-1", "JSC100", time.Time{})))
	second := sampleOrder("uuid-2", "JSC200", time.Time{})
	second.TotalAmount = decimal.RequireFromString("500.25")
	require.NoError(t, store.Orders().Create(ctx, second))

	count, err := store.Orders().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	revenue, err := store.Orders().TotalRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.RequireFromString("3499.25")), revenue.String())
}

func TestSettingSeedPreservesEdits(t *testing.T) {
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

	require.NoError(t, store.Settings().Seed(ctx, defaults))

	got, err := store.Settings().GetByKey(ctx, "business_name")
	require.NoError(t, err)
	assert.Equal(t, "Saree Emporium", got.Value)

	all, err := store.Settings().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "business_name", all[0].Key, "sorted by key")

	changed, err = store.Settings().Update(ctx, "missing_key", "x")
	require.NoError(t, err)
	assert.Zero(t, changed)
}
