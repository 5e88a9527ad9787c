package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahuljain-dev/sareecenter-backend/api/responses"
	"github.com/rahuljain-dev/sareecenter-backend/api/validators"
	"github.com/rahuljain-dev/sareecenter-backend/internal/cart"
	checkoutsvc "github.com/rahuljain-dev/sareecenter-backend/internal/checkout"
	ordersvc "github.com/rahuljain-dev/sareecenter-backend/internal/orders"
	productsvc "github.com/rahuljain-dev/sareecenter-backend/internal/products"
	pkgerrors "github.com/rahuljain-dev/sareecenter-backend/pkg/errors"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

type orderItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" validate:"required"`
	CustomerPhone   string             `json:"customerPhone" validate:"required"`
	CustomerAddress string             `json:"customerAddress" validate:"required"`
	CustomerCity    string             `json:"customerCity" validate:"required"`
	CustomerState   string             `json:"customerState" validate:"required"`
	CustomerPincode string             `json:"customerPincode" validate:"required"`
	CustomerMessage string             `json:"customerMessage,omitempty"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder runs the checkout flow: each submitted line is resolved
// against the live catalog, carted, and the cart is submitted as one
// order.
func CreateOrder(checkout *checkoutsvc.Service, products productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checkout == nil || products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cartStore, err := cart.NewStore(nil)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		for _, item := range payload.Items {
			product, err := products.Get(r.Context(), item.ID)
			if err != nil {
				if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
					err = pkgerrors.New(pkgerrors.CodeValidation,
						fmt.Sprintf("product %s is not available", item.ID))
				}
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if !product.InStock {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("%s is out of stock", product.Name)))
				return
			}

			err = cartStore.AddLine(cart.ProductSnapshot{
				ID:           product.ID,
				Name:         product.Name,
				Category:     product.Category,
				PiecesPerSet: product.PiecesPerSet,
				PricePerSet:  product.PricePerSet,
				ImageURL:     product.ImageURL,
			}, item.Quantity)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		result, err := checkout.NewCheckout(cartStore).Submit(r.Context(), checkoutsvc.CustomerInfo{
			Name:    payload.CustomerName,
			Email:   payload.CustomerEmail,
			Phone:   payload.CustomerPhone,
			Address: payload.CustomerAddress,
			City:    payload.CustomerCity,
			State:   payload.CustomerState,
			Pincode: payload.CustomerPincode,
			Message: payload.CustomerMessage,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{
			"id":      result.ID,
			"orderId": result.OrderID,
			"message": "Order created successfully",
		})
	}
}

// GetOrder serves one order by its storage id.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		order, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
