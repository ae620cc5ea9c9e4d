package requestresponse

// APIResponse : единый конверт успешного ответа
// swagger:model
type APIResponse struct {
	StatusCode int         `json:"statusCode" example:"200"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message" example:"успешно"`
	Success    bool        `json:"success" example:"true"`
}

// ErrorResponse : единый конверт ошибки, HTTP-статус дублирует statusCode
// swagger:model
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"не удалось авторизовать пользователя"`
	Success    bool   `json:"success" example:"false"`
}
