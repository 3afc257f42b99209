package store

import (
	"context"
	"errors"

	"github.com/krishx06/gitinsights-pro/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep the aggregates tidy and separately
// testable.
type Store interface {
	Users() Users
	Repositories() Repositories
	Dashboards() Dashboards

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise committed. Used by repository
	// sync so a batch of upserts lands atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Users() Users
	Repositories() Repositories
	Dashboards() Dashboards

	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by local id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpsertUser reconciles a GitHub identity into the users table keyed
	// by github_id: insert on first sight, refresh profile fields after.
	// Atomicity against concurrent logins for the same identity is the
	// database's native ON CONFLICT upsert. Returns the stored row.
	UpsertUser(ctx context.Context, u domain.User) (domain.User, error)
}

type Repositories interface {
	// GetRepositoryByID returns a repository by local id.
	GetRepositoryByID(ctx context.Context, id string) (domain.Repository, error)

	// ListRepositoriesByOwner returns an owner's repositories ordered by
	// most recently pushed. A non-empty search filters on name substring.
	ListRepositoriesByOwner(ctx context.Context, ownerID, search string) ([]domain.Repository, error)

	// ListRepositoriesByIDs returns the named rows, skipping unknown ids.
	ListRepositoriesByIDs(ctx context.Context, ids []string) ([]domain.Repository, error)

	// UpsertRepository inserts or refreshes a snapshot keyed by github_id.
	// The favorite flag survives re-sync. Returns the stored row.
	UpsertRepository(ctx context.Context, r domain.Repository) (domain.Repository, error)

	// SetFavorite flips the favorite flag. ErrNotFound if id is unknown.
	SetFavorite(ctx context.Context, id string, favorite bool) error
}

type Dashboards interface {
	// GetDashboard returns a dashboard scoped to its owner. ErrNotFound
	// covers both a missing row and someone else's dashboard.
	GetDashboard(ctx context.Context, id, userID string) (domain.Dashboard, error)

	// ListDashboardsByUser returns the user's dashboards, most recently
	// updated first.
	ListDashboardsByUser(ctx context.Context, userID string) ([]domain.Dashboard, error)

	// CreateDashboard inserts a new dashboard (id provided by app via ULID).
	CreateDashboard(ctx context.Context, d domain.Dashboard) error

	// UpdateDashboard replaces name and widgets, scoped to the owner.
	UpdateDashboard(ctx context.Context, d domain.Dashboard) error

	// DeleteDashboard removes a dashboard, scoped to the owner.
	DeleteDashboard(ctx context.Context, id, userID string) error
}
