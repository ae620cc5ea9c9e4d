package ports

import (
	"context"

	"auth-web-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error
	UpdateAvatar(ctx context.Context, uuid, avatarURL string) error
}

type UserService interface {
	Register(ctx context.Context, fullName, username, email, password string) (*model.PublicUser, error)
	UploadAvatar(ctx context.Context, userUUID string, data []byte, contentType string) (string, error)
}
