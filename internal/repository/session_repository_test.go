package repository_test

import (
	"context"
	"regexp"
	"testing"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &config.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestSessionRepository_Save(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $2, last_login_ip = $3 WHERE uuid = $1`)).
		WithArgs("u1", "token-1", "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), "u1", "token-1", "127.0.0.1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Save для несуществующего пользователя — ошибка
func TestSessionRepository_SaveUnknownUser(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $2`)).
		WithArgs("ghost", "token-1", "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), "ghost", "token-1", "127.0.0.1")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionRepository_Get(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT refresh_token FROM users WHERE uuid = $1`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"refresh_token"}).AddRow("token-1"))

	token, err := repo.Get(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

// Пустой слот равнозначен отсутствию сессии
func TestSessionRepository_GetEmptySlot(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT refresh_token FROM users`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"refresh_token"}).AddRow(nil))

	_, err := repo.Get(context.Background(), "u1")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

// Ротация проходит, только если в слоте лежит предъявленный токен
func TestSessionRepository_Rotate(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $3, last_login_ip = $4`)).
		WithArgs("u1", "old-token", "new-token", "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Rotate(context.Background(), "u1", "old-token", "new-token", "127.0.0.1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Слот уже перезаписан другим запросом — ротация отклоняется
func TestSessionRepository_RotateSuperseded(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $3`)).
		WithArgs("u1", "stale-token", "new-token", "127.0.0.1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rotate(context.Background(), "u1", "stale-token", "new-token", "127.0.0.1")

	assert.ErrorIs(t, err, model.ErrSessionSuperseded)
}

// Clear идемпотентна: нулевое число обновленных строк не считается ошибкой
func TestSessionRepository_ClearIdempotent(t *testing.T) {
	database, mock := newTestDatabase(t)
	repo := repository.NewSessionRepository(database)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = NULL WHERE uuid = $1`)).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Clear(context.Background(), "u1")

	assert.NoError(t, err)
}
