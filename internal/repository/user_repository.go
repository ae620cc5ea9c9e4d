package repository

import (
	"context"
	"database/sql"
	"errors"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя.
// Нарушение уникальности username/email переводится в model.ErrConflict.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, full_name, username, email, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING uuid, full_name, username, email, password_hash, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.FullName, user.Username, user.Email, user.PasswordHash).
		StructScan(createdUser)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, model.ErrConflict
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, full_name, username, email, password_hash, avatar_url, refresh_token, last_login_ip, created_at
				FROM users WHERE uuid = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByIdentifier : ищет пользователя по username или email
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT uuid, full_name, username, email, password_hash, avatar_url, refresh_token, last_login_ip, created_at
				FROM users WHERE username = $1 OR email = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по идентификатору", err)
	}
	return &user, nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить обновление пароля", err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// UpdateAvatar : сохраняет ссылку на аватар пользователя
func (r *UserRepository) UpdateAvatar(ctx context.Context, uuid, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $2 WHERE uuid = $1`
	result, err := r.DB.ExecContext(ctx, query, uuid, avatarURL)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить аватар", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить обновление аватара", err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}
