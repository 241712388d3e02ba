package utils

import "net/http"

// AppError is an error carrying the HTTP status the handler layer
// should respond with. Everything below the handlers returns plain
// errors or encodes failure in the value itself.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewUnprocessableError(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnprocessableEntity, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}
