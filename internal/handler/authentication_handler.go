package handler

import (
	"log"
	"net/http"
	"time"

	"auth-web-server/config"
	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, cfg *config.JWTConfig) *AuthenticationHandler {
	// TTL уже провалидированы при создании JWT-сервиса
	accessTTL, _ := time.ParseDuration(cfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(cfg.RefreshTokenTTL)

	return &AuthenticationHandler{
		authenticationService,
		accessTTL,
		refreshTTL,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Проверяет логин (username или email) и пароль, выдает пару токенов. Токены устанавливаются в httpOnly cookie и дублируются в теле ответа.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.APIResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный пароль"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		sendErrorResponse(w, http.StatusBadRequest, "логин и пароль обязательны")
		return
	}

	tokens, user, err := h.AuthenticationService.Login(ctx, identifier, req.Password, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		log.Println(err)
		status, message := statusFromError(err)
		sendErrorResponse(w, status, message)
		return
	}

	h.setTokenCookies(w, tokens.AccessToken, tokens.RefreshToken)
	sendResponse(w, http.StatusOK, requestresponse.LoginData{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "пользователь успешно вошел в систему")
}

// RefreshToken godoc
// @Summary Обновление пары токенов
// @Description Выполняет ротацию: предъявленный refresh-токен заменяется новым, повторное использование старого токена отклоняется. Токен берется из cookie refreshToken, при его отсутствии — из тела запроса.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса"
// @Success 200 {object} requestresponse.APIResponse "Новая пара токенов"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный, просроченный или замененный токен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// cookie имеет приоритет над телом запроса
	refreshToken := ""
	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req requestresponse.RefreshTokenRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := decodeJSON(w, r, &req); err != nil {
				return
			}
		}
		refreshToken = req.RefreshToken
	}

	tokens, err := h.AuthenticationService.Refresh(ctx, refreshToken, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		log.Println(err)
		status, _ := statusFromError(err)
		if status == http.StatusUnauthorized || status == http.StatusNotFound {
			// причина отказа наружу не раскрывается
			sendErrorResponse(w, http.StatusUnauthorized, "не удалось обновить токены")
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	h.setTokenCookies(w, tokens.AccessToken, tokens.RefreshToken)
	sendResponse(w, http.StatusOK, tokens, "токены успешно обновлены")
}

// Logout godoc
// @Summary Завершение сессии
// @Description Очищает сохраненный refresh-токен пользователя и удаляет cookie. Повторный logout не является ошибкой.
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.APIResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := security.GetClaimsFromContext(ctx)
	if !ok {
		sendErrorResponse(w, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	if err := h.AuthenticationService.Logout(ctx, claims.UserUUID); err != nil {
		log.Println(err)
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	h.clearTokenCookies(w)
	sendResponse(w, http.StatusOK, nil, "сессия успешно завершена")
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description Меняет пароль после проверки старого. Текущая сессия завершается только если это включено в конфигурации.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.APIResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустой новый пароль"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный старый пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/change-password [post]
func (h *AuthenticationHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := security.GetClaimsFromContext(ctx)
	if !ok {
		sendErrorResponse(w, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AuthenticationService.ChangePassword(ctx, claims.UserUUID, req.OldPassword, req.NewPassword); err != nil {
		log.Println(err)
		status, message := statusFromError(err)
		sendErrorResponse(w, status, message)
		return
	}

	sendResponse(w, http.StatusOK, nil, "пароль успешно изменен")
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает публичный профиль авторизованного пользователя
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.APIResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := security.GetClaimsFromContext(ctx)
	if !ok {
		sendErrorResponse(w, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	user, err := h.AuthenticationService.CurrentUser(ctx, claims.UserUUID)
	if err != nil {
		log.Println(err)
		status, message := statusFromError(err)
		sendErrorResponse(w, status, message)
		return
	}

	sendResponse(w, http.StatusOK, user, "текущий пользователь получен")
}

func (h *AuthenticationHandler) setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     security.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     security.RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthenticationHandler) clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{security.AccessTokenCookie, security.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
