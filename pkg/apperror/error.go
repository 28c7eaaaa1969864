package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Storage reports a database failure; the driver message is surfaced to the client
func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, err.Error(), err)
}
