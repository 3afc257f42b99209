package http

import (
	"errors"
	"net/http"

	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/httpx"
)

// writeServiceError maps service and store errors onto HTTP responses. A
// GitHub status error on an analytics proxy forwards the upstream code so
// the frontend can distinguish a missing repo from our own failure.
func writeServiceError(w http.ResponseWriter, err error) {
	var se *github.StatusError

	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrCodeReplayed):
		httpx.WriteError(w, http.StatusBadRequest, "OAuth code already used")
	case errors.As(err, &se):
		httpx.WriteError(w, se.Code, "github request failed")
	case errors.Is(err, service.ErrUpstreamAuth):
		httpx.WriteError(w, http.StatusInternalServerError, "github request failed")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
