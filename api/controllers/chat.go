package controllers

import (
	"net/http"

	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	chatsvc "github.com/makerstech/storefront-backend/internal/chat"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatRelay forwards the user's message to the automation webhook. The relay
// never fails from the client's point of view; degraded paths answer with
// the fallback text.
func ChatRelay(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		var payload chatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply := svc.Relay(r.Context(), sessionID, payload.Message)
		responses.WriteSuccess(w, chatResponse{Reply: reply})
	}
}

// ChatGreeting returns the canned session-opening message.
func ChatGreeting(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, chatResponse{Reply: svc.Greeting()})
	}
}
