package controllers

import (
	"net/http"

	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	contactsvc "github.com/makerstech/storefront-backend/internal/contact"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactSubmit validates and records a contact form submission. Invalid
// input never reaches the service.
func ContactSubmit(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Submit(r.Context(), contactsvc.SubmitInput{
			Name:    payload.Name,
			Email:   payload.Email,
			Message: payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, receipt)
	}
}
