package middlewares

import (
	"context"
	"net/http"
	"strings"

	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/exceptions"
	"tmdscreen-service/internal/pkg/utils"
)

// ClinicianAuth guards endpoints that expose stored assessments. Guest
// respondents use share tokens instead and never pass through here.
func (m *Middlewares) ClinicianAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := m.JWTManager.VerifyToken(token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLINICIAN_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
