package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	FullName string `json:"fullname" example:"Иван Иванов"`
	Username string `json:"username" example:"ivan123"`
	Email    string `json:"email" example:"ivan@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// AvatarData : ответ на загрузку аватара
type AvatarData struct {
	AvatarURL string `json:"avatarUrl" example:"https://s3.example.com/avatars/123e4567"`
}
