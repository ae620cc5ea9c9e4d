package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository кэширует публичные профили пользователей в Redis.
// В кэш попадает только санированная проекция, без хэша и токенов.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetUser(ctx context.Context, user *model.PublicUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return util.LogError("ошибка сериализации профиля", err)
	}

	if err := r.client.Client.Set(ctx, r.key(user.UUID), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения профиля в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetUser(ctx context.Context, uuid string) (*model.PublicUser, error) {
	val, err := r.client.Client.Get(ctx, r.key(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения профиля из Redis", err)
	}

	var user model.PublicUser
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, util.LogError("ошибка десериализации профиля из кэша", err)
	}
	return &user, nil
}

func (r *CacheRepository) DeleteUser(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.key(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления профиля из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uuid string) string {
	return fmt.Sprintf("user:%s", uuid)
}
