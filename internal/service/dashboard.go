package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/idx"
)

// ErrValidation is a dashboard payload failing input checks.
var ErrValidation = errors.New("validation_failed")

// DashboardService is CRUD over custom dashboards, always scoped to the
// calling user. The widget document is opaque; only well-formed JSON is
// enforced here.
type DashboardService struct {
	Store store.Store
}

func (s *DashboardService) Get(ctx context.Context, userID, id string) (domain.Dashboard, error) {
	return s.Store.Dashboards().GetDashboard(ctx, id, userID)
}

func (s *DashboardService) List(ctx context.Context, userID string) ([]domain.Dashboard, error) {
	return s.Store.Dashboards().ListDashboardsByUser(ctx, userID)
}

func (s *DashboardService) Create(ctx context.Context, userID, name string, widgets json.RawMessage) (domain.Dashboard, error) {
	if err := validateDashboard(name, widgets); err != nil {
		return domain.Dashboard{}, err
	}
	if len(widgets) == 0 {
		widgets = json.RawMessage("[]")
	}

	d := domain.Dashboard{
		ID:      idx.New().String(),
		UserID:  userID,
		Name:    name,
		Widgets: widgets,
	}
	if err := s.Store.Dashboards().CreateDashboard(ctx, d); err != nil {
		return domain.Dashboard{}, err
	}
	return s.Store.Dashboards().GetDashboard(ctx, d.ID, userID)
}

func (s *DashboardService) Update(ctx context.Context, userID, id, name string, widgets json.RawMessage) (domain.Dashboard, error) {
	if err := validateDashboard(name, widgets); err != nil {
		return domain.Dashboard{}, err
	}

	d, err := s.Store.Dashboards().GetDashboard(ctx, id, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	d.Name = name
	if len(widgets) > 0 {
		d.Widgets = widgets
	}

	if err := s.Store.Dashboards().UpdateDashboard(ctx, d); err != nil {
		return domain.Dashboard{}, err
	}
	return s.Store.Dashboards().GetDashboard(ctx, id, userID)
}

func (s *DashboardService) Delete(ctx context.Context, userID, id string) error {
	return s.Store.Dashboards().DeleteDashboard(ctx, id, userID)
}

func validateDashboard(name string, widgets json.RawMessage) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(widgets) > 0 && !json.Valid(widgets) {
		return fmt.Errorf("%w: widgets must be valid JSON", ErrValidation)
	}
	return nil
}
