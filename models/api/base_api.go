package apimodels

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` //сообщение ошибки
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

const (
	ErrNoJobTitle         = "No job title provided"
	ErrInvalidRequestBody = "Invalid request body"
	ErrInternalServer     = "Internal server error"
)
