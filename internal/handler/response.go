package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"auth-web-server/internal/model"
	"auth-web-server/internal/model/requestresponse"
)

// sendResponse отправляет успешный ответ в едином конверте,
// HTTP-статус дублирует statusCode
func sendResponse(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// sendErrorResponse отправляет ответ об ошибке в едином конверте
func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}

// decodeJSON обрабатывает декодирование JSON и возвращает ответ об ошибке, если декодирование не удалось
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return err
	}
	return nil
}

// statusFromError переводит ошибку сервиса в HTTP-статус и внешнее сообщение.
// Все отказы по токенам отдаются одинаковым 401: причина (невалидный,
// просроченный, замененный) наружу не раскрывается.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, "пользователь уже существует"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "пользователь не найден"
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrSessionSuperseded):
		return http.StatusUnauthorized, "не удалось авторизовать пользователя"
	default:
		return http.StatusInternalServerError, "внутренняя ошибка сервера"
	}
}
