package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis/redistest"
)

func TestKeyNamespacesParts(t *testing.T) {
	c := NewWithCmdable(redistest.NewFake())

	assert.Equal(t, "jsc:product:prod_1", c.Key("product", "prod_1"))
	assert.Equal(t, "jsc:products", c.Key("products"))
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewWithCmdable(redistest.NewFake())

	require.NoError(t, c.Set(ctx, c.Key("setting", "business_name"), "Jain Saree Center", 0))

	got, err := c.Get(ctx, c.Key("setting", "business_name"))
	require.NoError(t, err)
	assert.Equal(t, "Jain Saree Center", got)
}

func TestGetMissingReturnsNil(t *testing.T) {
	c := NewWithCmdable(redistest.NewFake())

	_, err := c.Get(context.Background(), c.Key("product", "missing"))
	assert.ErrorIs(t, err, Nil)
}

func TestSetNXGuardsExistingKeys(t *testing.T) {
	ctx := context.Background()
	c := NewWithCmdable(redistest.NewFake())

	ok, err := c.SetNX(ctx, c.Key("order_ident", "JSC1"), "order-uuid", time.Duration(0))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, c.Key("order_ident", "JSC1"), "other-uuid", time.Duration(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOperations(t *testing.T) {
	ctx := context.Background()
	c := NewWithCmdable(redistest.NewFake())

	added, err := c.SAdd(ctx, c.Key("products"), "prod_1", "prod_2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)

	removed, err := c.SRem(ctx, c.Key("products"), "prod_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	members, err := c.SMembers(ctx, c.Key("products"))
	require.NoError(t, err)
	assert.Equal(t, []string{"prod_2"}, members)
}
