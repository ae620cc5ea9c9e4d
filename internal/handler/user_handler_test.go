package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-web-server/internal/handler"
	"auth-web-server/internal/model"
	"auth-web-server/internal/model/requestresponse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, fullName, username, email, password string) (*model.PublicUser, error) {
	args := m.Called(ctx, fullName, username, email, password)
	user, _ := args.Get(0).(*model.PublicUser)
	return user, args.Error(1)
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userUUID string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, userUUID, data, contentType)
	return args.String(0), args.Error(1)
}

func TestRegisterUserHandler_Success(t *testing.T) {
	mockService := new(MockUserService)
	h := handler.NewUserHandler(mockService)

	mockService.On("Register", mock.Anything, "Иван Иванов", "ivan123", "ivan@example.com", "StrongPass123").
		Return(&model.PublicUser{UUID: "u1", Username: "ivan123"}, nil)

	req := jsonRequest(t, http.MethodPost, "/api/users/register", requestresponse.RegisterRequest{
		FullName: "Иван Иванов",
		Username: "ivan123",
		Email:    "ivan@example.com",
		Password: "StrongPass123",
	})
	recorder := httptest.NewRecorder()

	h.RegisterUser(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)
	assert.True(t, envelope.Success)
	mockService.AssertExpectations(t)
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	mockService := new(MockUserService)
	h := handler.NewUserHandler(mockService)

	mockService.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, model.ErrConflict)

	req := jsonRequest(t, http.MethodPost, "/api/users/register", requestresponse.RegisterRequest{
		FullName: "Иван Иванов",
		Username: "ivan123",
		Email:    "ivan@example.com",
		Password: "StrongPass123",
	})
	recorder := httptest.NewRecorder()

	h.RegisterUser(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var envelope requestresponse.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, http.StatusConflict, envelope.StatusCode)
}

func TestRegisterUserHandler_BadJSON(t *testing.T) {
	mockService := new(MockUserService)
	h := handler.NewUserHandler(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString("{не json"))
	recorder := httptest.NewRecorder()

	h.RegisterUser(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatarHandler(t *testing.T) {
	mockService := new(MockUserService)
	h := handler.NewUserHandler(mockService)

	mockService.On("UploadAvatar", mock.Anything, "u1", []byte("png-bytes"), mock.Anything).
		Return("https://s3.example.com/avatars/u1", nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()

	h.UploadAvatar(recorder, authorizedContext(req, "u1"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockService.AssertExpectations(t)
}

func TestUploadAvatarHandler_NoFile(t *testing.T) {
	mockService := new(MockUserService)
	h := handler.NewUserHandler(mockService)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()

	h.UploadAvatar(recorder, authorizedContext(req, "u1"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
