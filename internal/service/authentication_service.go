package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"auth-web-server/config"
	"auth-web-server/internal/model"
	"auth-web-server/internal/notifier"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"auth-web-server/internal/util"
)

type AuthenticationService struct {
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepositoryInterface
	jwtService        ports.JWTServiceInterface
	cacheRepository   ports.CacheRepositoryInterface
	*config.AppConfig
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepositoryInterface,
	jwtService ports.JWTServiceInterface,
	cacheRepository ports.CacheRepositoryInterface,
	cfg *config.AppConfig,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository,
		sessionRepository,
		jwtService,
		cacheRepository,
		cfg,
	}
}

// Login проверяет учетные данные и открывает сессию.
// Это единственный путь, который создает refresh-токен без ротации.
// Если сохранить токен не удалось, пара наружу не возвращается.
func (s *AuthenticationService) Login(ctx context.Context, identifier, password, userAgent, ipAddress string) (*model.TokensPair, *model.PublicUser, error) {
	user, err := s.userRepository.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.ErrNotFound
		}
		return nil, nil, util.LogError("[AuthService] ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, model.ErrUnauthorized
	}

	tokens, err := s.jwtService.GeneratePair(user.UUID)
	if err != nil {
		return nil, nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	if err := s.sessionRepository.Save(ctx, user.UUID, tokens.RefreshToken, ipAddress); err != nil {
		return nil, nil, util.LogError("[AuthService] ошибка сохранения refresh токена", err)
	}

	log.Printf("[AuthService] пользователь %s вошел в систему, user-agent: %s", user.UUID, userAgent)
	return tokens, user.Sanitized(), nil
}

// Refresh выполняет ротацию пары токенов.
// Требования к операции:
//  1. Предъявленный refresh-токен должен иметь валидную подпись, вид refresh
//     и не быть просроченным.
//  2. Токен должен совпадать с единственным сохраненным токеном пользователя.
//     Замена слота выполняется атомарно, поэтому из конкурирующих запросов
//     с одним и тем же токеном ротацию выполнит ровно один.
//  3. Ранее ротированный токен повторно не принимается, даже если его срок
//     действия еще не истек.
//  4. При обновлении с нового IP отправляется webhook-уведомление,
//     сама операция при этом не запрещается.
//
// Наружу все отказы отдаются как 401 без уточнения причины.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, model.ErrUnauthorized
	}

	claims, err := s.jwtService.Verify(refreshToken, security.KindRefresh)
	if err != nil {
		log.Printf("[AuthService] отказ в refresh: %v", err)
		return nil, err
	}

	// известный IP читается до ротации, отдельной проверкой доступа это не является
	var knownIP string
	if user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID); err == nil {
		knownIP = user.LastLoginIP.String
	}

	tokens, err := s.jwtService.GeneratePair(claims.UserUUID)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	if err := s.sessionRepository.Rotate(ctx, claims.UserUUID, refreshToken, tokens.RefreshToken, ipAddress); err != nil {
		if errors.Is(err, model.ErrSessionSuperseded) || errors.Is(err, model.ErrNotFound) {
			log.Printf("[AuthService] refresh отклонен, сессия пользователя %s была заменена или завершена", claims.UserUUID)
			return nil, model.ErrSessionSuperseded
		}
		return nil, util.LogError("[AuthService] не удалось сохранить refresh токен", err)
	}

	if knownIP != "" && knownIP != ipAddress {
		log.Printf("[AuthService] обнаружен refresh с нового ip адреса, отправка webhook")
		go func() {
			if err := notifier.NotifyWebhook(s.AppConfig.Webhook.URL, claims.UserUUID, ipAddress, knownIP); err != nil {
				log.Printf("ошибка отправки webhook: %v", err)
			}
		}()
	}

	return tokens, nil
}

// Logout завершает сессию пользователя, очищая слот refresh-токена.
// Операция идемпотентна: повторный logout ошибкой не считается.
func (s *AuthenticationService) Logout(ctx context.Context, userUUID string) error {
	if err := s.sessionRepository.Clear(ctx, userUUID); err != nil {
		return util.LogError("[AuthService] не удалось завершить сессию", err)
	}
	return nil
}

// ChangePassword меняет пароль после проверки старого.
// Завершает ли смена пароля текущую сессию, определяет настройка
// session.invalidate_on_password_change.
func (s *AuthenticationService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: новый пароль не заполнен", model.ErrValidation)
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return util.LogError("[AuthService] ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return model.ErrUnauthorized
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return util.LogError("[AuthService] не удалось создать хэш пароля", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, userUUID, hash); err != nil {
		return util.LogError("[AuthService] не удалось обновить пароль", err)
	}

	if s.AppConfig.Session.InvalidateOnPasswordChange {
		if err := s.sessionRepository.Clear(ctx, userUUID); err != nil {
			return util.LogError("[AuthService] не удалось завершить сессию после смены пароля", err)
		}
	}

	return nil
}

// CurrentUser возвращает публичный профиль авторизованного пользователя.
// Профиль читается из Redis-кэша, при промахе — из БД.
func (s *AuthenticationService) CurrentUser(ctx context.Context, userUUID string) (*model.PublicUser, error) {
	if cached, err := s.cacheRepository.GetUser(ctx, userUUID); err == nil && cached != nil {
		return cached, nil
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, util.LogError("[AuthService] ошибка поиска пользователя", err)
	}

	public := user.Sanitized()
	if err := s.cacheRepository.SetUser(ctx, public); err != nil {
		log.Printf("[AuthService] не удалось закэшировать профиль: %v", err)
	}

	return public, nil
}
