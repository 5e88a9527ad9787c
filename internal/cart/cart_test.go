package cart

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
)

func silkSaree() ProductSnapshot {
	return ProductSnapshot{
		ID:           "prod_1",
		Name:         "Banarasi Silk Saree",
		Category:     "silk",
		PiecesPerSet: 4,
		PricePerSet:  decimal.RequireFromString("1499.50"),
	}
}

func cottonSaree() ProductSnapshot {
	return ProductSnapshot{
		ID:           "prod_2",
		Name:         "Chanderi Cotton Saree",
		Category:     "cotton",
		PiecesPerSet: 6,
		PricePerSet:  decimal.RequireFromString("899.00"),
	}
}

func TestAddLineMergesSameProduct(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, store.AddLine(silkSaree(), 2))
	require.NoError(t, store.AddLine(silkSaree(), 3))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddLineRejectsBadQuantity(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	err = store.AddLine(silkSaree(), 0)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
	assert.True(t, store.IsEmpty())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, store.AddLine(silkSaree(), 2))
	require.NoError(t, store.SetQuantity("prod_1", 0))
	assert.True(t, store.IsEmpty())

	err = store.SetQuantity("prod_1", 3)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestRemoveLineIsIdempotent(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, store.AddLine(silkSaree(), 1))
	require.NoError(t, store.RemoveLine("prod_1"))
	require.NoError(t, store.RemoveLine("prod_1"))
	assert.True(t, store.IsEmpty())
}

func TestTotals(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, store.AddLine(silkSaree(), 2))
	require.NoError(t, store.AddLine(cottonSaree(), 1))

	assert.Equal(t, 3, store.TotalSets())
	assert.Equal(t, 2*4+1*6, store.TotalPieces())
	assert.True(t, store.TotalAmount().Equal(decimal.RequireFromString("3898.00")),
		store.TotalAmount().String())
}

func TestLineSnapshotSurvivesCatalogChanges(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	product := silkSaree()
	require.NoError(t, store.AddLine(product, 1))

	// Reprice the catalog copy; the cart keeps the snapshot.
	product.PricePerSet = decimal.RequireFromString("9999.00")

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].PricePerSet.Equal(decimal.RequireFromString("1499.50")))
}

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	persister := NewFilePersister(path)

	store, err := NewStore(persister)
	require.NoError(t, err)
	assert.True(t, store.IsEmpty(), "fresh cart file starts empty")

	require.NoError(t, store.AddLine(silkSaree(), 2))
	require.NoError(t, store.AddLine(cottonSaree(), 1))

	restored, err := NewStore(NewFilePersister(path))
	require.NoError(t, err)
	require.Len(t, restored.Lines(), 2)
	assert.Equal(t, 3, restored.TotalSets())
	assert.True(t, restored.TotalAmount().Equal(store.TotalAmount()))

	require.NoError(t, restored.Clear())

	cleared, err := NewStore(NewFilePersister(path))
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}
