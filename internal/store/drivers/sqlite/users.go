package sqlite

import (
	"context"

	"github.com/krishx06/gitinsights-pro/internal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, github_id, username, avatar_url, email, access_token, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// UpsertUser is a single ON CONFLICT statement so two concurrent logins for
// the same GitHub identity cannot create two rows. The insert id is only
// used on first sight; an existing row keeps its id and created_at.
func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := nowUTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, github_id, username, avatar_url, email, access_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (github_id) DO UPDATE SET
			username     = excluded.username,
			avatar_url   = excluded.avatar_url,
			email        = excluded.email,
			access_token = excluded.access_token,
			updated_at   = excluded.updated_at
		RETURNING `+userColumns,
		u.ID, u.GitHubID, u.Username, u.AvatarURL, u.Email, u.AccessToken, now, now,
	)
	return scanUser(row)
}
