package setting

import (
	"context"
	"io"
	"testing"

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
	logg := logger.New(logger.Options{ServiceName: "setting-test", Output: io.Discard})
	svc := NewService(store.Settings(), logg)
	require.NoError(t, svc.Seed(context.Background()))
	return svc
}

func TestSeedProvidesDefaults(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	name, err := svc.Get(ctx, KeyBusinessName)
	require.NoError(t, err)
	assert.Equal(t, "Jain Saree Center", name)

	port, err := svc.Get(ctx, KeySMTPPort)
	require.NoError(t, err)
	assert.Equal(t, "587", port)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(Defaults()))
}

func TestUpdateUnknownKeyReturnsNotFound(t *testing.T) {
	svc := newService(t)

	err := svc.Update(context.Background(), "no_such_key", "x")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestGroupedSplitsByPrefix(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateBusiness(ctx, "02012345678", "shop@example.com"))
	require.NoError(t, svc.UpdateNotifications(ctx, "owner@example.com", "9876543210"))

	grouped, err := svc.Grouped(ctx)
	require.NoError(t, err)

	assert.Equal(t, "shop@example.com", grouped.Business["email"])
	assert.Equal(t, "02012345678", grouped.Business["phone"])
	assert.Equal(t, "Jain Saree Center", grouped.Business["name"])
	assert.Equal(t, "owner@example.com", grouped.Notifications["owner_email"])
	assert.Equal(t, "9876543210", grouped.Notifications["owner_phone"])

	// SMTP credentials stay out of both groups.
	_, inBusiness := grouped.Business["smtp_pass"]
	_, inNotifications := grouped.Notifications["smtp_pass"]
	assert.False(t, inBusiness)
	assert.False(t, inNotifications)
}
