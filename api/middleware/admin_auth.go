package middleware

import (
	"net/http"

	"github.com/rahuljain-dev/sareecenter-backend/api/responses"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	pkgerrors "github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/security"
)

// AdminAuth gates the admin panel routes behind HTTP basic auth. There is
// a single admin identity; a bcrypt hash is preferred when configured,
// otherwise the plain password is compared in constant time.
func AdminAuth(cfg config.AdminConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !CheckAdminCredentials(cfg, username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "admin credentials required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CheckAdminCredentials verifies a username/password pair against the
// configured admin identity.
func CheckAdminCredentials(cfg config.AdminConfig, username, password string) bool {
	userOK := security.ConstantTimeEquals(username, cfg.Username)

	var passOK bool
	if cfg.PasswordHash != "" {
		passOK = security.VerifyPassword(cfg.PasswordHash, password)
	} else {
		passOK = security.ConstantTimeEquals(password, cfg.Password)
	}

	return userOK && passOK
}
