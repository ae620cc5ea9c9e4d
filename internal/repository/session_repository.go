package repository

import (
	"context"
	"database/sql"
	"errors"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/util"
)

// SessionRepository хранит единственный действующий refresh-токен
// пользователя в колонке users.refresh_token
type SessionRepository struct {
	*config.Database
}

func NewSessionRepository(database *config.Database) *SessionRepository {
	return &SessionRepository{database}
}

// Save безусловно перезаписывает refresh-токен пользователя.
// Используется только при логине, когда прежняя сессия не предъявляется.
func (r *SessionRepository) Save(ctx context.Context, userUUID, refreshToken, ipAddress string) error {
	query := `UPDATE users SET refresh_token = $2, last_login_ip = $3 WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, userUUID, refreshToken, ipAddress)
	if err != nil {
		return util.LogError("[SessionRepo] не удалось сохранить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] не удалось проверить сохранение токена", err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Get возвращает сохраненный refresh-токен.
// model.ErrNotFound — если пользователя нет или слот пуст.
func (r *SessionRepository) Get(ctx context.Context, userUUID string) (string, error) {
	query := `SELECT refresh_token FROM users WHERE uuid = $1`

	var stored sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userUUID).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", util.LogError("[SessionRepo] ошибка чтения refresh токена", err)
	}

	if !stored.Valid || stored.String == "" {
		return "", model.ErrNotFound
	}

	return stored.String, nil
}

// Rotate атомарно заменяет refresh-токен: compare-and-swap одним UPDATE.
// Замена проходит только если в слоте все еще лежит предъявленный токен,
// поэтому из конкурирующих refresh-запросов выигрывает ровно один.
// Повтор уже ротированного токена дает model.ErrSessionSuperseded.
func (r *SessionRepository) Rotate(ctx context.Context, userUUID, presentedToken, nextToken, ipAddress string) error {
	query := `UPDATE users SET refresh_token = $3, last_login_ip = $4
				WHERE uuid = $1 AND refresh_token = $2`

	result, err := r.DB.ExecContext(ctx, query, userUUID, presentedToken, nextToken, ipAddress)
	if err != nil {
		return util.LogError("[SessionRepo] не удалось ротировать refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] не удалось проверить ротацию токена", err)
	}
	if rowsAffected == 0 {
		return model.ErrSessionSuperseded
	}

	return nil
}

// Clear очищает слот refresh-токена. Идемпотентна: очистка пустого
// слота или несуществующего пользователя ошибкой не считается.
func (r *SessionRepository) Clear(ctx context.Context, userUUID string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE uuid = $1`

	if _, err := r.DB.ExecContext(ctx, query, userUUID); err != nil {
		return util.LogError("[SessionRepo] не удалось очистить refresh токен", err)
	}

	return nil
}
