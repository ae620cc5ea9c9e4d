package ports

import (
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
)

type JWTServiceInterface interface {
	Issue(userUUID string, kind security.TokenKind) (string, error)
	Verify(tokenString string, kind security.TokenKind) (*security.Claims, error)
	GeneratePair(userUUID string) (*model.TokensPair, error)
}
