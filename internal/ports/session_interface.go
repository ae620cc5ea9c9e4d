package ports

import "context"

// SessionRepositoryInterface хранит единственный действующий refresh-токен
// пользователя. Rotate заменяет токен атомарно: замена выполняется только
// если в слоте все еще лежит предъявленный токен.
type SessionRepositoryInterface interface {
	Save(ctx context.Context, userUUID, refreshToken, ipAddress string) error
	Get(ctx context.Context, userUUID string) (string, error)
	Rotate(ctx context.Context, userUUID, presentedToken, nextToken, ipAddress string) error
	Clear(ctx context.Context, userUUID string) error
}
