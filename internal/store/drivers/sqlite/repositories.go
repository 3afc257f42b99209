package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/store"
)

type repositoriesRepo struct {
	db dbtx
}

const repoColumns = `id, github_id, owner_id, name, full_name, description, language,
	stars, forks, open_issues, watchers, size, license, topics, is_private,
	is_favorite, pushed_at, last_synced_at, created_at, updated_at`

func (r *repositoriesRepo) GetRepositoryByID(ctx context.Context, id string) (domain.Repository, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE id = ?`, id)
	return scanRepository(row)
}

func (r *repositoriesRepo) ListRepositoriesByOwner(ctx context.Context, ownerID, search string) ([]domain.Repository, error) {
	query := `SELECT ` + repoColumns + ` FROM repositories WHERE owner_id = ?`
	args := []any{ownerID}
	if search != "" {
		query += ` AND name LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += ` ORDER BY pushed_at DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRepositories(rows)
}

func (r *repositoriesRepo) ListRepositoriesByIDs(ctx context.Context, ids []string) ([]domain.Repository, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+repoColumns+` FROM repositories WHERE id IN (`+placeholders+`) ORDER BY full_name ASC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRepositories(rows)
}

// UpsertRepository refreshes the snapshot keyed by github_id. is_favorite is
// deliberately absent from the update list: re-syncing must not clear a
// user's favorites.
func (r *repositoriesRepo) UpsertRepository(ctx context.Context, repo domain.Repository) (domain.Repository, error) {
	topics, err := encodeTopics(repo.Topics)
	if err != nil {
		return domain.Repository{}, err
	}

	now := nowUTC()
	var pushedAt sql.NullTime
	if !repo.PushedAt.IsZero() {
		pushedAt = sql.NullTime{Time: repo.PushedAt.UTC(), Valid: true}
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO repositories (
			id, github_id, owner_id, name, full_name, description, language,
			stars, forks, open_issues, watchers, size, license, topics,
			is_private, is_favorite, pushed_at, last_synced_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?)
		ON CONFLICT (github_id) DO UPDATE SET
			name           = excluded.name,
			full_name      = excluded.full_name,
			description    = excluded.description,
			language       = excluded.language,
			stars          = excluded.stars,
			forks          = excluded.forks,
			open_issues    = excluded.open_issues,
			watchers       = excluded.watchers,
			size           = excluded.size,
			license        = excluded.license,
			topics         = excluded.topics,
			is_private     = excluded.is_private,
			pushed_at      = excluded.pushed_at,
			last_synced_at = excluded.last_synced_at,
			updated_at     = excluded.updated_at
		RETURNING `+repoColumns,
		repo.ID, repo.GitHubID, repo.OwnerID, repo.Name, repo.FullName,
		mapStringNull(repo.Description), mapStringNull(repo.Language),
		repo.Stars, repo.Forks, repo.OpenIssues, repo.Watchers, repo.Size,
		mapStringNull(repo.License), topics, repo.IsPrivate,
		pushedAt, now, now, now,
	)
	return scanRepository(row)
}

func (r *repositoriesRepo) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE repositories SET is_favorite = ?, updated_at = ? WHERE id = ?`,
		favorite, nowUTC(), id)
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

func collectRepositories(rows *sql.Rows) ([]domain.Repository, error) {
	var repos []domain.Repository
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, rows.Err()
}

// escapeLike escapes LIKE metacharacters in user-supplied search input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
