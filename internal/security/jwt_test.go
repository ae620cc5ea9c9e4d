package security_test

import (
	"testing"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, cfg config.JWTConfig) *security.JWTService {
	t.Helper()

	if cfg.AccessSecretKey == "" {
		cfg.AccessSecretKey = "access-secret"
	}
	if cfg.RefreshSecretKey == "" {
		cfg.RefreshSecretKey = "refresh-secret"
	}
	if cfg.AccessTokenTTL == "" {
		cfg.AccessTokenTTL = "15m"
	}
	if cfg.RefreshTokenTTL == "" {
		cfg.RefreshTokenTTL = "720h"
	}

	svc, err := security.NewJWTService(&cfg)
	require.NoError(t, err)
	return svc
}

// 1. Успешный выпуск и проверка токенов обоих видов
func TestJWT_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{})

	for _, kind := range []security.TokenKind{security.KindAccess, security.KindRefresh} {
		token, err := svc.Issue("user-1", kind)
		require.NoError(t, err)

		claims, err := svc.Verify(token, kind)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserUUID)
		assert.Equal(t, kind, claims.TokenKind)
	}
}

// 2. Токен одного вида не проходит проверку как токен другого вида
func TestJWT_CrossKindRejected(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{})

	refreshToken, err := svc.Issue("user-1", security.KindRefresh)
	require.NoError(t, err)

	_, err = svc.Verify(refreshToken, security.KindAccess)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)

	accessToken, err := svc.Issue("user-1", security.KindAccess)
	require.NoError(t, err)

	_, err = svc.Verify(accessToken, security.KindRefresh)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

// 3. Даже при одинаковых секретах вид токена проверяется по claims
func TestJWT_CrossKindRejectedWithSharedSecret(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{
		AccessSecretKey:  "shared-secret",
		RefreshSecretKey: "shared-secret",
	})

	refreshToken, err := svc.Issue("user-1", security.KindRefresh)
	require.NoError(t, err)

	_, err = svc.Verify(refreshToken, security.KindAccess)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

// 4. Просроченный токен с валидной подписью дает ErrTokenExpired
func TestJWT_Expired(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{
		AccessTokenTTL:  "-1h",
		RefreshTokenTTL: "1h",
	})

	token, err := svc.Issue("user-1", security.KindAccess)
	require.NoError(t, err)

	_, err = svc.Verify(token, security.KindAccess)
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

// 5. Мусор и токен с чужой подписью дают ErrTokenInvalid
func TestJWT_Forged(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{})
	other := newTestJWTService(t, config.JWTConfig{
		AccessSecretKey:  "another-secret",
		RefreshSecretKey: "yet-another-secret",
	})

	_, err := svc.Verify("not-a-jwt", security.KindAccess)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)

	forged, err := other.Issue("user-1", security.KindAccess)
	require.NoError(t, err)

	_, err = svc.Verify(forged, security.KindAccess)
	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

// 6. TTL access-токена обязан быть строго меньше TTL refresh-токена
func TestJWT_AccessTTLMustBeShorter(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "a",
		RefreshSecretKey: "r",
		AccessTokenTTL:   "2h",
		RefreshTokenTTL:  "1h",
	})
	assert.Error(t, err)

	_, err = security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "a",
		RefreshSecretKey: "r",
		AccessTokenTTL:   "1h",
		RefreshTokenTTL:  "1h",
	})
	assert.Error(t, err)
}

// 7. Каждый выпущенный токен уникален
func TestJWT_IssuedTokensAreUnique(t *testing.T) {
	svc := newTestJWTService(t, config.JWTConfig{})

	first, err := svc.Issue("user-1", security.KindRefresh)
	require.NoError(t, err)
	second, err := svc.Issue("user-1", security.KindRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
