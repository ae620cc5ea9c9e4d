package model

import (
	"database/sql"
	"time"
)

type User struct {
	UUID         string         `db:"uuid" json:"uuid"`
	FullName     string         `db:"full_name" json:"full_name"`
	Username     string         `db:"username" json:"username"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	AvatarURL    sql.NullString `db:"avatar_url" json:"-"`
	RefreshToken sql.NullString `db:"refresh_token" json:"-"`
	LastLoginIP  sql.NullString `db:"last_login_ip" json:"-"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// PublicUser : проекция пользователя без хэша пароля и refresh-токена
// swagger:model
type PublicUser struct {
	UUID      string    `json:"uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	FullName  string    `json:"fullName" example:"Иван Иванов"`
	Username  string    `json:"username" example:"ivan123"`
	Email     string    `json:"email" example:"ivan@example.com"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized возвращает проекцию без секретных полей
func (u *User) Sanitized() *PublicUser {
	return &PublicUser{
		UUID:      u.UUID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL.String,
		CreatedAt: u.CreatedAt,
	}
}
