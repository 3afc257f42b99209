package http

import (
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

type AuthCallbackHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP completes the GitHub OAuth flow.
//
//	@Summary		GitHub OAuth callback
//	@Description	Exchanges the authorization code, reconciles the user record, and redirects
//	@Description	to the frontend dashboard with a session token in the query string.
//	@Tags			Auth
//	@Param			code	query	string	true	"Authorization code from GitHub"
//	@Success		302		"Redirect to the frontend with ?token="
//	@Failure		400		{object}	ErrorResponse	"Missing or already-used authorization code"
//	@Failure		500		{object}	ErrorResponse	"GitHub rejected the exchange, or internal error"
//	@Router			/auth/callback [get].
func (h *AuthCallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	redirect, err := h.AuthService.Callback(ctx, r.URL.Query().Get("code"))
	if err != nil {
		log.Warn("oauth callback failed", "err", err)
		writeServiceError(w, err)
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}
