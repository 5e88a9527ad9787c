package controllers

import (
	"net/http"

	"github.com/rahuljain-dev/sareecenter-backend/api/middleware"
	"github.com/rahuljain-dev/sareecenter-backend/api/responses"
	"github.com/rahuljain-dev/sareecenter-backend/api/validators"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	pkgerrors "github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin verifies the admin credentials for the panel's login form.
// There is no session: subsequent admin calls carry the same credentials
// as basic auth.
func AdminLogin(cfg config.AdminConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !middleware.CheckAdminCredentials(cfg, payload.Username, payload.Password) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "login successful"})
	}
}
