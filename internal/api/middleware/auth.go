package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/saudesim/agenda-service/internal/api/handlers"
)

const tokenHeader = "X-Webhook-Token"

const msgInvalidToken = "token de webhook ausente ou inválido"

// Logger interface for logging
type Logger interface {
	Warn(format string, v ...interface{})
}

// WebhookAuth rejects requests whose X-Webhook-Token header does not match
// the configured shared secret.
func WebhookAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(tokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Rejected: missing or invalid webhook token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
