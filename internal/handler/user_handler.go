package handler

import (
	"io"
	"log"
	"net/http"

	"auth-web-server/internal/model/requestresponse"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/security"
)

const maxAvatarSize = 5 << 20 // 5 МБ

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя с именем, логином, email и паролем. В ответе нет ни хэша пароля, ни refresh-токена.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.APIResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые или некорректные поля"
// @Failure 409 {object} requestresponse.ErrorResponse "Username или email уже заняты"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Register(r.Context(), req.FullName, req.Username, req.Email, req.Password)
	if err != nil {
		log.Println(err)
		status, message := statusFromError(err)
		sendErrorResponse(w, status, message)
		return
	}

	sendResponse(w, http.StatusCreated, user, "пользователь успешно зарегистрирован")
}

// UploadAvatar godoc
// @Summary Загрузка аватара
// @Description Принимает multipart-форму с полем avatar, сохраняет файл в S3 и записывает ссылку в профиль
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Файл аватара"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.APIResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/users/avatar [post]
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := security.GetClaimsFromContext(ctx)
	if !ok {
		sendErrorResponse(w, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректная multipart-форма")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "файл аватара не приложен")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, "не удалось прочитать файл")
		return
	}

	url, err := h.UserService.UploadAvatar(ctx, claims.UserUUID, data, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println(err)
		status, message := statusFromError(err)
		sendErrorResponse(w, status, message)
		return
	}

	sendResponse(w, http.StatusOK, requestresponse.AvatarData{AvatarURL: url}, "аватар успешно загружен")
}
