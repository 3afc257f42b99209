package http

import (
	"encoding/json"
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/pkg/httpx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

type DashboardsHandler struct {
	DashboardService *service.DashboardService
}

type dashboardRequest struct {
	Name    string          `json:"name"`
	Widgets json.RawMessage `json:"widgets"`
}

// HandleList returns the caller's dashboards.
//
//	@Summary		List dashboards
//	@Tags			Dashboards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Dashboard
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing session token"
//	@Router			/api/dashboards [get].
func (h *DashboardsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboards, err := h.DashboardService.List(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		slogx.FromContext(ctx).Warn("dashboard list failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashboards)
}

// HandleCreate creates a dashboard.
//
//	@Summary		Create dashboard
//	@Description	Creates a named dashboard with an optional widget layout. The layout is stored verbatim.
//	@Tags			Dashboards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dashboardRequest	true	"Dashboard name and widget layout"
//	@Success		201		{object}	domain.Dashboard
//	@Failure		400		{object}	ErrorResponse	"Missing name or malformed widgets"
//	@Router			/api/dashboards [post].
func (h *DashboardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	d, err := h.DashboardService.Create(ctx, httpx.UserIDFromContext(ctx), req.Name, req.Widgets)
	if err != nil {
		slogx.FromContext(ctx).Warn("dashboard create failed", "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, d)
}

// HandleGet returns one dashboard.
//
//	@Summary		Get dashboard
//	@Tags			Dashboards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Dashboard id"
//	@Success		200	{object}	domain.Dashboard
//	@Failure		404	{object}	ErrorResponse	"Unknown dashboard"
//	@Router			/api/dashboards/{id} [get].
func (h *DashboardsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := h.DashboardService.Get(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// HandleUpdate replaces a dashboard's name and layout.
//
//	@Summary		Update dashboard
//	@Tags			Dashboards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Dashboard id"
//	@Param			body	body		dashboardRequest	true	"New name and widget layout"
//	@Success		200		{object}	domain.Dashboard
//	@Failure		400		{object}	ErrorResponse	"Missing name or malformed widgets"
//	@Failure		404		{object}	ErrorResponse	"Unknown dashboard"
//	@Router			/api/dashboards/{id} [put].
func (h *DashboardsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	d, err := h.DashboardService.Update(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), req.Name, req.Widgets)
	if err != nil {
		slogx.FromContext(ctx).Warn("dashboard update failed", "dashboard_id", r.PathValue("id"), "err", err)
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

// HandleDelete removes a dashboard.
//
//	@Summary		Delete dashboard
//	@Tags			Dashboards
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Dashboard id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	ErrorResponse	"Unknown dashboard"
//	@Router			/api/dashboards/{id} [delete].
func (h *DashboardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.DashboardService.Delete(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
