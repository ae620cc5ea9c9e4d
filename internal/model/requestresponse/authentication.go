package requestresponse

import "auth-web-server/internal/model"

// LoginRequest : тело запроса на аутентификацию, достаточно одного из полей username/email
type LoginRequest struct {
	Username string `json:"username" example:"ivan123"`
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// LoginData : данные успешной аутентификации, токены дублируются в cookie
type LoginData struct {
	User         *model.PublicUser `json:"user"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
}

// RefreshTokenRequest : запрос на обновление пары токенов,
// поле используется только если cookie refreshToken отсутствует
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiJ9..."`
}

// ChangePasswordRequest : тело запроса на смену пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" example:"P@ssw0rd123"`
	NewPassword string `json:"newPassword" example:"N3wP@ssw0rd!"`
}
