package controllers

import (
	"context"
	"net/http"

	"github.com/makerstech/storefront-backend/api/middleware"
	"github.com/makerstech/storefront-backend/api/responses"
	"github.com/makerstech/storefront-backend/api/validators"
	"github.com/makerstech/storefront-backend/pkg/auth"
	"github.com/makerstech/storefront-backend/pkg/config"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/makerstech/storefront-backend/pkg/logger"
)

type sessionCreator interface {
	Create(ctx context.Context, subject string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

type adminSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

type adminSessionResponse struct {
	SessionID string `json:"sessionId"`
	Account   string `json:"account"`
}

// AdminSessionCreate exchanges an externally issued identity token for an
// opaque admin session.
func AdminSessionCreate(cfg config.IdentityConfig, sessions sessionCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		claims, err := auth.ParseIdentityToken(cfg, payload.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid identity token"))
			return
		}

		sessionID, err := sessions.Create(r.Context(), claims.AccountID())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating session"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, adminSessionResponse{
			SessionID: sessionID,
			Account:   claims.AccountID(),
		})
	}
}

// AdminLogout revokes the caller's session.
func AdminLogout(sessions sessionCreator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session required"))
			return
		}

		if err := sessions.Revoke(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "signed out"})
	}
}
