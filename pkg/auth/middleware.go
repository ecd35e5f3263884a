package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/chainsafe/bridge-monitor/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-monitor/pkg/app/http"
	"go.uber.org/zap"
)

// Middleware rejects requests without a valid bearer token.
// A nil or unconfigured validator passes every request through.
func Middleware(v *Validator, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if !v.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}
			claims, err := v.Validate(r.Context(), token)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
