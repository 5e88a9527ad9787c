package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahuljain-dev/sareecenter-backend/api/responses"
	"github.com/rahuljain-dev/sareecenter-backend/api/validators"
	settingsvc "github.com/rahuljain-dev/sareecenter-backend/internal/settings"
	pkgerrors "github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

// ListSettings serves the raw key/value table the storefront reads.
func ListSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		settings, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, settings)
	}
}

type updateSettingRequest struct {
	Value string `json:"value"`
}

// UpdateSetting updates one setting by key.
func UpdateSetting(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload updateSettingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), chi.URLParam(r, "key"), payload.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "setting updated"})
	}
}

// AdminSettings serves the grouped business/notifications view the admin
// panel renders.
func AdminSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		grouped, err := svc.Grouped(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, grouped)
	}
}

type updateBusinessSettingsRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email" validate:"required,email"`
}

// AdminUpdateBusinessSettings updates the shop's public contact details.
func AdminUpdateBusinessSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload updateBusinessSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateBusiness(r.Context(), payload.Phone, payload.Email); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "business settings updated"})
	}
}

type updateNotificationSettingsRequest struct {
	OwnerEmail string `json:"owner_email" validate:"required,email"`
	OwnerPhone string `json:"owner_phone"`
}

// AdminUpdateNotificationSettings updates where order alerts go.
func AdminUpdateNotificationSettings(svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var payload updateNotificationSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateNotifications(r.Context(), payload.OwnerEmail, payload.OwnerPhone); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "notification settings updated"})
	}
}
