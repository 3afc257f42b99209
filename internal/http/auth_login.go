package http

import (
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/service"
)

type AuthLoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP redirects the browser to GitHub's consent screen.
//
//	@Summary		Start GitHub login
//	@Description	Redirects to GitHub's OAuth consent screen requesting profile, email, and repository read access.
//	@Tags			Auth
//	@Success		302	"Redirect to github.com/login/oauth/authorize"
//	@Router			/auth/login [get].
func (h *AuthLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.AuthService.LoginURL(), http.StatusFound)
}
