package product

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/internal/storage/kvstore"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis/redistest"
)

func newService(t *testing.T) Service {
	t.Helper()
	store := kvstore.New(redis.NewWithCmdable(redistest.NewFake()))
	logg := logger.New(logger.Options{ServiceName: "product-test", Output: io.Discard})
	return NewService(store.Products(), logg)
}

func validCreateInput() CreateInput {
	return CreateInput{
		Name:         "Banarasi Silk Saree",
		Category:     "silk",
		PiecesPerSet: 4,
		PricePerSet:  decimal.RequireFromString("1499.50"),
		Description:  "Handwoven with zari border",
		ImageURL:     "https://example.com/banarasi.jpg",
	}
}

func TestCreateGeneratesIDAndDefaultsInStock(t *testing.T) {
	svc := newService(t)

	dto, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Regexp(t, `^prod_\d+$`, dto.ID)
	assert.True(t, dto.InStock)
	assert.False(t, dto.CreatedAt.IsZero())
}

func TestCreateRequiresFields(t *testing.T) {
	svc := newService(t)

	input := validCreateInput()
	input.Name = "  "
	input.PiecesPerSet = 0

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "piecesPerSet")
}

func TestCreateHonorsExplicitIDAndStockFlag(t *testing.T) {
	svc := newService(t)

	outOfStock := false
	input := validCreateInput()
	input.ID = "prod_custom"
	input.InStock = &outOfStock

	dto, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "prod_custom", dto.ID)
	assert.False(t, dto.InStock)

	_, err = svc.Create(context.Background(), input)
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
}

func TestListSearchesCatalog(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first := validCreateInput()
	first.ID = "prod_1"
	second := validCreateInput()
	second.ID = "prod_2"
	second.Name = "Chanderi Cotton Saree"
	second.Category = "cotton"

	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	matched, err := svc.List(ctx, ListInput{Search: "cotton"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "prod_2", matched[0].ID)

	all, err := svc.List(ctx, ListInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateMissingProductReturnsNotFound(t *testing.T) {
	svc := newService(t)

	name := "Kanjivaram Silk Saree"
	err := svc.Update(context.Background(), "prod_missing", UpdateInput{Name: &name})
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	svc := newService(t)

	zero := 0
	err := svc.Update(context.Background(), "prod_1", UpdateInput{PiecesPerSet: &zero})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
}

func TestDeleteRemovesProduct(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	input := validCreateInput()
	input.ID = "prod_1"
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "prod_1"))

	_, err = svc.Get(ctx, "prod_1")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))

	err = svc.Delete(ctx, "prod_1")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}
