package middlewares

import (
	"crypto/subtle"
	"net/http"

	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/exceptions"
	"tmdscreen-service/internal/pkg/utils"
)

// APIKeyAuth guards server-to-server endpoints such as the dry-run check.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configured := m.InternalConfig.App.InternalAPIKey
		if configured == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configured)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
