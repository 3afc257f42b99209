package sqlite

import (
	"context"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/store"
)

type dashboardsRepo struct {
	db dbtx
}

const dashboardColumns = `id, user_id, name, widgets, created_at, updated_at`

func (r *dashboardsRepo) GetDashboard(ctx context.Context, id, userID string) (domain.Dashboard, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+dashboardColumns+` FROM dashboards WHERE id = ? AND user_id = ?`,
		id, userID)
	return scanDashboard(row)
}

func (r *dashboardsRepo) ListDashboardsByUser(ctx context.Context, userID string) ([]domain.Dashboard, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dashboardColumns+` FROM dashboards WHERE user_id = ? ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dashboards []domain.Dashboard
	for rows.Next() {
		d, err := scanDashboard(rows)
		if err != nil {
			return nil, err
		}
		dashboards = append(dashboards, d)
	}
	return dashboards, rows.Err()
}

func (r *dashboardsRepo) CreateDashboard(ctx context.Context, d domain.Dashboard) error {
	widgets := string(d.Widgets)
	if widgets == "" {
		widgets = "[]"
	}
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dashboards (id, user_id, name, widgets, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.Name, widgets, now, now)
	return err
}

func (r *dashboardsRepo) UpdateDashboard(ctx context.Context, d domain.Dashboard) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dashboards SET name = ?, widgets = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		d.Name, string(d.Widgets), nowUTC(), d.ID, d.UserID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *dashboardsRepo) DeleteDashboard(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM dashboards WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
