package controllers

import (
	"net/http"

	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type storefrontSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// StorefrontSessionOpen hands the client its session id. The session
// middleware already minted one when the header was absent; this endpoint
// just makes it explicit for clients that want to persist it up front.
func StorefrontSessionOpen(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireStorefrontSession(w, r, logg)
		if !ok {
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, storefrontSessionResponse{SessionID: sessionID})
	}
}
