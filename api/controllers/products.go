package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rahuljain-dev/sareecenter-backend/api/responses"
	"github.com/rahuljain-dev/sareecenter-backend/api/validators"
	productsvc "github.com/rahuljain-dev/sareecenter-backend/internal/products"
	pkgerrors "github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

const maxListLimit = 500

// ListProducts serves the storefront catalog, with optional search and
// limit query parameters.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.List(r.Context(), productsvc.ListInput{
			Search: validators.SanitizeString(r.URL.Query().Get("search"), 100),
			Limit:  limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// GetProduct serves one catalog entry.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		product, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	PiecesPerSet int             `json:"piecesPerSet" validate:"required,min=1"`
	PricePerSet  decimal.Decimal `json:"pricePerSet" validate:"required"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	InStock      *bool           `json:"inStock,omitempty"`
}

// AdminCreateProduct adds a catalog entry from the admin panel.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), productsvc.CreateInput{
			ID:           payload.ID,
			Name:         payload.Name,
			Category:     payload.Category,
			PiecesPerSet: payload.PiecesPerSet,
			PricePerSet:  payload.PricePerSet,
			Description:  payload.Description,
			ImageURL:     payload.ImageURL,
			InStock:      payload.InStock,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	PiecesPerSet *int             `json:"piecesPerSet,omitempty" validate:"omitempty,min=1"`
	PricePerSet  *decimal.Decimal `json:"pricePerSet,omitempty"`
	Description  *string          `json:"description,omitempty"`
	ImageURL     *string          `json:"imageUrl,omitempty"`
	InStock      *bool            `json:"inStock,omitempty"`
}

// AdminUpdateProduct applies a partial update to a catalog entry.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.Update(r.Context(), chi.URLParam(r, "id"), productsvc.UpdateInput{
			Name:         payload.Name,
			Category:     payload.Category,
			PiecesPerSet: payload.PiecesPerSet,
			PricePerSet:  payload.PricePerSet,
			Description:  payload.Description,
			ImageURL:     payload.ImageURL,
			InStock:      payload.InStock,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "product updated"})
	}
}

// AdminDeleteProduct removes a catalog entry.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "product deleted"})
	}
}
