package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt-хэш пароля.
// Сам пароль никогда не логируется и не возвращается в ошибках.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования пароля: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хэшем, сравнение выполняет bcrypt
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
