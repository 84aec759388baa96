package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/makerstech/storefront-backend/api/middleware"
	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	cartsvc "github.com/makerstech/storefront-backend/internal/cart"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// CartAddItem adds a product to the session's cart; repeat adds merge into
// the existing line.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddToCart(r.Context(), sessionID, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartSetQuantity sets a line's quantity; zero removes the line.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.SetQuantity(r.Context(), sessionID, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartRemoveItem removes a line unconditionally.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveItem(r.Context(), sessionID, productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartGet returns the cart with recomputed totals.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		cart, err := svc.GetCart(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartClear discards the session's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		if err := svc.ClearCart(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

func requireStorefrontSession(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session id missing"))
		return "", false
	}
	return sessionID, true
}

func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productID")
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || productID < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").WithDetails(map[string]any{"product_id": raw})
	}
	return productID, nil
}
