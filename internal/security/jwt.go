package security

import (
	"errors"
	"fmt"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind различает access и refresh токены.
// У каждого вида свой секрет и свой TTL, поэтому токен одного вида
// никогда не проходит проверку как токен другого вида.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

type Claims struct {
	UserUUID  string    `json:"user_uuid"`
	TokenKind TokenKind `json:"token_kind"`
	jwt.RegisteredClaims
}

type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewJWTService создает подписанта токенов. Конфигурация читается один раз,
// после старта не изменяется. TTL access-токена обязан быть строго меньше
// TTL refresh-токена.
func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга refresh_token_ttl: %w", err)
	}

	if accessTTL >= refreshTTL {
		return nil, fmt.Errorf("TTL access-токена (%v) должен быть меньше TTL refresh-токена (%v)", accessTTL, refreshTTL)
	}

	if cfg.AccessSecretKey == "" || cfg.RefreshSecretKey == "" {
		return nil, fmt.Errorf("секреты подписи токенов не заданы")
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessSecretKey),
		refreshSecret: []byte(cfg.RefreshSecretKey),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Issuer,
	}, nil
}

func (service *JWTService) secret(kind TokenKind) []byte {
	if kind == KindRefresh {
		return service.refreshSecret
	}
	return service.accessSecret
}

func (service *JWTService) ttl(kind TokenKind) time.Duration {
	if kind == KindRefresh {
		return service.refreshTTL
	}
	return service.accessTTL
}

// Issue выпускает подписанный токен указанного вида
func (service *JWTService) Issue(userUUID string, kind TokenKind) (string, error) {
	now := time.Now()
	claims := Claims{
		UserUUID:  userUUID,
		TokenKind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti делает каждый выпущенный токен уникальным: без него две пары,
			// выпущенные в одну секунду, были бы байт-в-байт одинаковыми
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.ttl(kind))),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(service.secret(kind))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись, вид и срок действия токена.
// Возвращает model.ErrTokenExpired для просроченного токена с валидной
// подписью и model.ErrTokenInvalid во всех остальных случаях.
func (service *JWTService) Verify(jwtTokenStr string, kind TokenKind) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secret(kind), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrTokenInvalid
	}

	if !jwtToken.Valid || claims.TokenKind != kind {
		return nil, model.ErrTokenInvalid
	}

	return claims, nil
}

// GeneratePair выпускает новую пару токенов для пользователя
func (service *JWTService) GeneratePair(userUUID string) (*model.TokensPair, error) {
	accessToken, err := service.Issue(userUUID, KindAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.Issue(userUUID, KindRefresh)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
