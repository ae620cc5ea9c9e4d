package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"auth-web-server/internal/model"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
	"auth-web-server/internal/util"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository  ports.UserRepository
	cacheRepository ports.CacheRepositoryInterface
	s3Service       ports.S3ServiceInterface
}

func NewUserService(
	userRepository ports.UserRepository,
	cacheRepository ports.CacheRepositoryInterface,
	s3Service ports.S3ServiceInterface,
) *UserService {
	return &UserService{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		s3Service:       s3Service,
	}
}

// Register создает нового пользователя.
// Возвращает проекцию без хэша пароля и refresh-токена.
func (s *UserService) Register(ctx context.Context, fullName, username, email, password string) (*model.PublicUser, error) {
	if fullName == "" || username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: все поля обязательны", model.ErrValidation)
	}

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	for _, c := range username {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return nil, fmt.Errorf("%w: логин должен содержать только латинские буквы и цифры", model.ErrValidation)
		}
	}

	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: некорректный email", model.ErrValidation)
	}

	if len(password) < 8 {
		return nil, fmt.Errorf("%w: пароль должен содержать минимум 8 символов", model.ErrValidation)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		FullName:     fullName,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.ErrConflict
		}
		return nil, util.LogError("[UserService] ошибка создания пользователя", err)
	}

	return created.Sanitized(), nil
}

// UploadAvatar сохраняет аватар пользователя в S3 и записывает ссылку в профиль
func (s *UserService) UploadAvatar(ctx context.Context, userUUID string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: файл аватара пуст", model.ErrValidation)
	}

	key := fmt.Sprintf("avatars/%s", userUUID)
	if err := s.s3Service.UploadObject(ctx, key, data, contentType); err != nil {
		return "", util.LogError("[UserService] ошибка загрузки аватара в S3", err)
	}

	url, err := s.s3Service.PresignGetURL(ctx, key)
	if err != nil {
		return "", util.LogError("[UserService] ошибка генерации ссылки на аватар", err)
	}

	if err := s.userRepository.UpdateAvatar(ctx, userUUID, url); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", util.LogError("[UserService] не удалось сохранить ссылку на аватар", err)
	}

	// профиль в кэше устарел
	if err := s.cacheRepository.DeleteUser(ctx, userUUID); err != nil {
		log.Printf("[UserService] не удалось сбросить кэш профиля: %v", err)
	}

	return url, nil
}
