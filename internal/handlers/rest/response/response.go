// Package response пишет JSON-ответы REST-хендлеров.
package response

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error отдает текст ошибки клиенту только для 4xx; детали 5xx остаются в
// логе.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		message = err.Error()
	}
	if status >= http.StatusInternalServerError && err != nil {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	}
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}

// Caller - id вызывающего из identity middleware. Если его нет, ответ 401
// уже записан.
func Caller(w http.ResponseWriter, r *http.Request, log errorLogger) (int64, bool) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		JSON(w, log, http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + identity.Header + " header"})
		return 0, false
	}
	return userID, true
}
