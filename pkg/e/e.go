package e

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки с сессиями
	ErrSessionTokenNotFound = fmt.Errorf("session token not found in context")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("an unexpected error occurred")
)

// ClientError — ошибка, вызванная запросом клиента (валидация, отсутствующий ресурс).
// Статус и сообщение отдаются клиенту как есть; всё остальное схлопывается в 500.
type ClientError struct {
	Status  int
	Message string
}

func (c *ClientError) Error() string {
	return c.Message
}

// NewClientError создает клиентскую ошибку с HTTP-статусом и сообщением.
func NewClientError(status int, format string, args ...interface{}) *ClientError {
	return &ClientError{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// BadRequest создает клиентскую ошибку 400 Bad Request.
func BadRequest(format string, args ...interface{}) *ClientError {
	return NewClientError(http.StatusBadRequest, format, args...)
}

// NotFound создает клиентскую ошибку 404 Not Found.
func NotFound(format string, args ...interface{}) *ClientError {
	return NewClientError(http.StatusNotFound, format, args...)
}

// AsClientError возвращает ClientError из цепочки ошибок, если она там есть.
func AsClientError(err error) (*ClientError, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr, true
	}
	return nil, false
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
