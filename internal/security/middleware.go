package security

import (
	"context"
	"log"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// JWTMiddleware проверяет access-токен из заголовка Authorization
// или из cookie accessToken и кладет claims в context запроса
func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := tokenFromRequest(request)
			if token == "" {
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.Verify(token, KindAccess)
			if err != nil {
				log.Printf("невалидный access токен: %v", err)
				http.Error(writer, "unauthorized", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func tokenFromRequest(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimPrefix(authorizationHeader, "Bearer ")
	}

	if cookie, err := request.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// GetClaimsFromContext достает claims авторизованного пользователя из context
func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
