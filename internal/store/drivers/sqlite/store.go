package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/store"
	_ "modernc.org/sqlite"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// repos work identically inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs so deleting a user cascades to repos and dashboards.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	t := &txStore{tx: tx}

	defer func() {
		_ = tx.Rollback() // safe after commit
	}()

	if err := fn(t); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users               { return &usersRepo{db: s.db} }
func (s *Store) Repositories() store.Repositories { return &repositoriesRepo{db: s.db} }
func (s *Store) Dashboards() store.Dashboards     { return &dashboardsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Topics are stored as a JSON array in a TEXT column.
func encodeTopics(topics []string) (string, error) {
	if len(topics) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(topics)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTopics(raw string) []string {
	if raw == "" {
		return nil
	}
	var topics []string
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		return nil
	}
	if len(topics) == 0 {
		return nil
	}
	return topics
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.GitHubID, &u.Username, &u.AvatarURL, &u.Email,
		&u.AccessToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func scanRepository(row interface{ Scan(...any) error }) (domain.Repository, error) {
	var (
		r           domain.Repository
		description sql.NullString
		language    sql.NullString
		license     sql.NullString
		topics      string
		pushedAt    sql.NullTime
	)
	err := row.Scan(
		&r.ID, &r.GitHubID, &r.OwnerID, &r.Name, &r.FullName,
		&description, &language, &r.Stars, &r.Forks, &r.OpenIssues,
		&r.Watchers, &r.Size, &license, &topics, &r.IsPrivate,
		&r.IsFavorite, &pushedAt, &r.LastSyncedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return domain.Repository{}, mapNotFound(err)
	}
	r.Description = mapNullString(description)
	r.Language = mapNullString(language)
	r.License = mapNullString(license)
	r.Topics = decodeTopics(topics)
	if pushedAt.Valid {
		r.PushedAt = pushedAt.Time.UTC()
	}
	r.LastSyncedAt = r.LastSyncedAt.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return r, nil
}

func scanDashboard(row interface{ Scan(...any) error }) (domain.Dashboard, error) {
	var (
		d       domain.Dashboard
		widgets string
	)
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &widgets, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Dashboard{}, mapNotFound(err)
	}
	d.Widgets = json.RawMessage(widgets)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return d, nil
}

func nowUTC() time.Time { return time.Now().UTC() }
