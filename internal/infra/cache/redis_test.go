package cache

import (
	"context"
	"testing"
	"time"

	"foodmarket/config"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (service.MenuCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewMenuCache(client, &config.Config{Cache: &config.CacheConfig{MenuTTL: ttl}}), server
}

func TestRedisMenuCache_RoundTrip(t *testing.T) {
	menuCache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	vendorID := uuid.New()
	scope := service.MenuScopeVendor(vendorID)

	menus, ok, err := menuCache.GetMenus(ctx, scope)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, menus)

	stored := []*entity.Menu{{ID: uuid.New(), VendorID: vendorID, Name: "Jollof", Price: 1500, Quantity: 10}}
	require.NoError(t, menuCache.SetMenus(ctx, scope, stored))

	menus, ok, err = menuCache.GetMenus(ctx, scope)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, menus, 1)
	assert.Equal(t, stored[0].ID, menus[0].ID)
	assert.Equal(t, int64(1500), menus[0].Price)
}

func TestRedisMenuCache_EmptyListIsAHit(t *testing.T) {
	menuCache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, menuCache.SetMenus(ctx, service.MenuScopeAll, nil))

	menus, ok, err := menuCache.GetMenus(ctx, service.MenuScopeAll)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, menus)
}

func TestRedisMenuCache_Invalidate(t *testing.T) {
	menuCache, server := newTestCache(t, time.Minute)
	ctx := context.Background()
	vendorScope := service.MenuScopeVendor(uuid.New())

	require.NoError(t, menuCache.SetMenus(ctx, vendorScope, []*entity.Menu{{Name: "Suya"}}))
	require.NoError(t, menuCache.SetMenus(ctx, service.MenuScopeAll, []*entity.Menu{{Name: "Suya"}}))

	require.NoError(t, menuCache.Invalidate(ctx, vendorScope, service.MenuScopeAll))
	assert.False(t, server.Exists(keyPrefix+vendorScope))
	assert.False(t, server.Exists(keyPrefix+service.MenuScopeAll))
}

func TestRedisMenuCache_Expires(t *testing.T) {
	menuCache, server := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, menuCache.SetMenus(ctx, service.MenuScopeAll, []*entity.Menu{{Name: "Suya"}}))
	server.FastForward(31 * time.Second)

	_, ok, err := menuCache.GetMenus(ctx, service.MenuScopeAll)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMenuCache_CorruptEntryIsAMiss(t *testing.T) {
	menuCache, server := newTestCache(t, time.Minute)
	require.NoError(t, server.Set(keyPrefix+service.MenuScopeAll, "not-json"))

	_, ok, err := menuCache.GetMenus(context.Background(), service.MenuScopeAll)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewMenuCache_NilClientIsNoop(t *testing.T) {
	menuCache := NewMenuCache(nil, nil)
	ctx := context.Background()

	require.NoError(t, menuCache.SetMenus(ctx, service.MenuScopeAll, []*entity.Menu{{Name: "Suya"}}))
	_, ok, err := menuCache.GetMenus(ctx, service.MenuScopeAll)
	require.NoError(t, err)
	assert.False(t, ok)
}
