package controllers

import (
	"net/http"

	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	inventorysvc "github.com/makerstech/storefront-backend/internal/inventory"
	"github.com/makerstech/storefront-backend/pkg/enums"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

// InventoryList serves the filtered admin inventory view. All filters arrive
// as query parameters; omitting them matches everything.
func InventoryList(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stockFilter, err := enums.ParseStockFilter(r.URL.Query().Get("stock"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid stock filter"))
			return
		}

		priceBracket, err := enums.ParsePriceBracket(r.URL.Query().Get("price"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price filter"))
			return
		}

		items, err := svc.FilterProducts(r.Context(), inventorysvc.FilterInput{
			SearchTerm: validators.SanitizeString(r.URL.Query().Get("search"), 200),
			Stock:      stockFilter,
			Price:      priceBracket,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// InventoryMetrics serves aggregates over the unfiltered inventory.
func InventoryMetrics(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := svc.Metrics(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, metrics)
	}
}
