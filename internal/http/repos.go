package http

import (
	"encoding/json"
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/pkg/httpx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

type ReposHandler struct {
	RepoService *service.RepoService
}

// HandleList returns the caller's synced repositories.
//
//	@Summary		List repositories
//	@Description	Returns the caller's synced repository snapshots, most recently pushed first.
//	@Tags			Repos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Filter by name substring"
//	@Success		200		{array}		domain.Repository
//	@Failure		401		{object}	ErrorResponse	"Invalid or missing session token"
//	@Router			/api/repos [get].
func (h *ReposHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repos, err := h.RepoService.List(ctx, httpx.UserIDFromContext(ctx), r.URL.Query().Get("search"))
	if err != nil {
		slogx.FromContext(ctx).Warn("repository list failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, repos)
}

// HandleSync refreshes the caller's snapshots from GitHub.
//
//	@Summary		Sync repositories
//	@Description	Pulls the caller's repositories from GitHub and refreshes the local snapshots in one transaction.
//	@Tags			Repos
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	SyncResponse
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	ErrorResponse	"GitHub request failed"
//	@Router			/api/repos/sync [post].
func (h *ReposHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.RepoService.Sync(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		slogx.FromContext(ctx).Warn("repository sync failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, SyncResponse{Synced: count})
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// HandleFavorite flips the favorite flag on an owned repository.
//
//	@Summary		Mark repository favorite
//	@Description	Sets or clears the favorite flag. The flag survives re-syncs.
//	@Tags			Repos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Repository id"
//	@Param			body	body		favoriteRequest	true	"Desired favorite state"
//	@Success		200		{object}	domain.Repository
//	@Failure		403		{object}	ErrorResponse	"Repository belongs to another user"
//	@Failure		404		{object}	ErrorResponse	"Unknown repository"
//	@Router			/api/repos/{id}/favorite [patch].
func (h *ReposHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	repo, err := h.RepoService.SetFavorite(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), req.Favorite)
	if err != nil {
		slogx.FromContext(ctx).Warn("favorite update failed", "repo_id", r.PathValue("id"), "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, repo)
}

// HandleCompare returns two owned repositories side by side.
//
//	@Summary		Compare repositories
//	@Description	Returns the repository in the path and the one named by ?other= for side-by-side display.
//	@Tags			Repos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		string	true	"Base repository id"
//	@Param			other	query		string	true	"Repository id to compare against"
//	@Success		200		{object}	service.RepoComparison
//	@Failure		404		{object}	ErrorResponse	"Unknown repository"
//	@Router			/api/repos/{id}/compare [get].
func (h *ReposHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	otherID := r.URL.Query().Get("other")
	if otherID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "other repository id is required")
		return
	}

	cmp, err := h.RepoService.Compare(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), otherID)
	if err != nil {
		slogx.FromContext(ctx).Warn("repository compare failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cmp)
}
