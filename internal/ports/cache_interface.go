package ports

import (
	"context"

	"auth-web-server/internal/model"
)

type CacheRepositoryInterface interface {
	SetUser(ctx context.Context, user *model.PublicUser) error
	GetUser(ctx context.Context, uuid string) (*model.PublicUser, error)
	DeleteUser(ctx context.Context, uuid string) error
}
