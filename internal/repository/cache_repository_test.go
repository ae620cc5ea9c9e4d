package repository_test

import (
	"context"
	"testing"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *repository.CacheRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return repository.NewCacheRepository(&config.RedisClient{Client: client}, 10*time.Minute)
}

func TestCacheRepository_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	user := &model.PublicUser{
		UUID:     "u1",
		FullName: "Иван Иванов",
		Username: "ivan123",
		Email:    "ivan@example.com",
	}

	require.NoError(t, cache.SetUser(ctx, user))

	cached, err := cache.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, user.Username, cached.Username)
	assert.Equal(t, user.Email, cached.Email)
}

// Промах кэша — это (nil, nil), а не ошибка
func TestCacheRepository_Miss(t *testing.T) {
	cache := newTestCache(t)

	cached, err := cache.GetUser(context.Background(), "ghost")

	assert.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCacheRepository_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetUser(ctx, &model.PublicUser{UUID: "u1"}))
	require.NoError(t, cache.DeleteUser(ctx, "u1"))

	cached, err := cache.GetUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, cached)

	// повторное удаление не является ошибкой
	assert.NoError(t, cache.DeleteUser(ctx, "u1"))
}
