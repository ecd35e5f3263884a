// Package http provides chi-compatible handlers that return errors
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/bridge-monitor/pkg/app/errors"
	"go.uber.org/zap"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
// Internal errors are logged; only the ServiceError message reaches the client.
//
// Usage with chi:
//
//	r.Get("/transfers", http.HandleError(logger, h.listTransfers))
func HandleError(logger *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		if logger != nil {
			switch {
			case apperrors.Is(err, apperrors.CategoryRecovering):
				logger.Debug("Service not ready",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err))
			case apperrors.IsInternalError(err):
				logger.Error("Request failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err))
			}
		}
		DefaultErrorHandler(w, err)
	}
}

// DefaultErrorHandler writes err as a JSON error body
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &errorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, &errorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes data with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
