package http

import (
	"encoding/json"
	"net/http"

	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse отображает ошибку в HTTP-статус и сообщение.
// Клиентские ошибки отдаются как есть, всё остальное схлопывается в 500 без деталей.
func ToHTTPResponse(err error) (int, string) {
	if clientErr, ok := e.AsClientError(err); ok {
		return clientErr.Status, clientErr.Message
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

// WriteError логирует ошибку и пишет JSON-ответ.
// Неожиданные ошибки логируются целиком, но клиенту не раскрываются.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	code, msg := ToHTTPResponse(err)

	if code == http.StatusInternalServerError {
		log.Errorf(err, "unexpected error")
	} else {
		log.Warnf("%d: %s", code, msg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
