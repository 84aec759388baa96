package controllers

import (
	"net/http"

	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	catalogsvc "github.com/makerstech/storefront-backend/internal/catalog"
	"github.com/makerstech/storefront-backend/pkg/enums"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

// CatalogList serves the filtered, sorted storefront catalog.
func CatalogList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		sortKey, err := enums.ParseSortKey(r.URL.Query().Get("sort"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
			return
		}

		products, err := svc.ListProducts(r.Context(), catalogsvc.ListProductsInput{
			Category: validators.SanitizeString(r.URL.Query().Get("category"), 100),
			Sort:     sortKey,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// CatalogGetProduct serves a single product by id.
func CatalogGetProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CatalogCategories serves the distinct category list.
func CatalogCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}
