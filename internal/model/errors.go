package model

import "errors"

// Ошибки-сентинелы. Сервисы оборачивают их через %w,
// обработчики сопоставляют через errors.Is и переводят в HTTP-статус.
var (
	ErrValidation   = errors.New("некорректные входные данные")
	ErrConflict     = errors.New("пользователь уже существует")
	ErrNotFound     = errors.New("пользователь не найден")
	ErrUnauthorized = errors.New("неверный логин или пароль")

	// Ошибки токенов. Наружу все три отдаются одинаковым 401,
	// различие нужно только для серверных логов.
	ErrTokenInvalid      = errors.New("невалидный токен")
	ErrTokenExpired      = errors.New("токен просрочен")
	ErrSessionSuperseded = errors.New("сессия была заменена")
)
