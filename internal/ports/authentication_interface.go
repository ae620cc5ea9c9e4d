package ports

import (
	"context"

	"auth-web-server/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, identifier, password, userAgent, ipAddress string) (*model.TokensPair, *model.PublicUser, error)
	Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*model.TokensPair, error)
	Logout(ctx context.Context, userUUID string) error
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context, userUUID string) (*model.PublicUser, error)
}
