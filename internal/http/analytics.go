package http

import (
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/pkg/httpx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

type AnalyticsHandler struct {
	AnalyticsService *service.AnalyticsService
}

// HandleDashboardStats returns the overview stat cards.
//
//	@Summary		Dashboard overview stats
//	@Description	Returns the stat cards for the dashboard overview: repository count, stars, forks, followers.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.StatCard
//	@Failure		500	{object}	ErrorResponse	"GitHub request failed"
//	@Router			/api/dashboard/stats [get].
func (h *AnalyticsHandler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.AnalyticsService.DashboardStats(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		slogx.FromContext(ctx).Warn("dashboard stats failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cards)
}

// HandleRepoStats returns the aggregated per-repository overview.
//
//	@Summary		Repository stats
//	@Description	Fans out to GitHub for repository details, languages, and contributors and joins them into one panel.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner	path		string	true	"Repository owner login"
//	@Param			repo	path		string	true	"Repository name"
//	@Success		200		{object}	domain.RepoStats
//	@Failure		404		{object}	ErrorResponse	"GitHub does not know the repository"
//	@Router			/api/repos/{owner}/{repo}/stats [get].
func (h *AnalyticsHandler) HandleRepoStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.AnalyticsService.RepoStats(ctx, httpx.UserIDFromContext(ctx), r.PathValue("owner"), r.PathValue("repo"))
	if err != nil {
		slogx.FromContext(ctx).Warn("repo stats failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

// HandleLanguages returns the language breakdown.
//
//	@Summary		Repository languages
//	@Description	Returns the byte share per language, largest first, with percentages.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner	path		string	true	"Repository owner login"
//	@Param			repo	path		string	true	"Repository name"
//	@Success		200		{array}		domain.LanguageShare
//	@Router			/api/repos/{owner}/{repo}/languages [get].
func (h *AnalyticsHandler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shares, err := h.AnalyticsService.Languages(ctx, httpx.UserIDFromContext(ctx), r.PathValue("owner"), r.PathValue("repo"))
	if err != nil {
		slogx.FromContext(ctx).Warn("languages fetch failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, shares)
}

// HandleContributors returns the contributor list.
//
//	@Summary		Repository contributors
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner	path		string	true	"Repository owner login"
//	@Param			repo	path		string	true	"Repository name"
//	@Success		200		{array}		domain.Contributor
//	@Router			/api/repos/{owner}/{repo}/contributors [get].
func (h *AnalyticsHandler) HandleContributors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contributors, err := h.AnalyticsService.Contributors(ctx, httpx.UserIDFromContext(ctx), r.PathValue("owner"), r.PathValue("repo"))
	if err != nil {
		slogx.FromContext(ctx).Warn("contributors fetch failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contributors)
}

// HandleCommits returns the daily commit activity for the last four weeks.
//
//	@Summary		Repository commit activity
//	@Description	Returns commits per day for the last four weeks. Every day in the window is present, zero or not.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner	path		string	true	"Repository owner login"
//	@Param			repo	path		string	true	"Repository name"
//	@Success		200		{array}		domain.CommitActivity
//	@Router			/api/repos/{owner}/{repo}/commits [get].
func (h *AnalyticsHandler) HandleCommits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activity, err := h.AnalyticsService.CommitActivity(ctx, httpx.UserIDFromContext(ctx), r.PathValue("owner"), r.PathValue("repo"))
	if err != nil {
		slogx.FromContext(ctx).Warn("commit activity fetch failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, activity)
}
