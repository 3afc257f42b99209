package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/idx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

// ErrForbidden is an operation on a repository the caller does not own.
var ErrForbidden = errors.New("forbidden")

// RepoLister is the slice of the GitHub client repository sync needs.
type RepoLister interface {
	ListUserRepos(ctx context.Context, token string) ([]github.Repo, error)
}

// RepoService owns the local repository snapshots: syncing them from
// GitHub, listing, favorites, and side-by-side comparison.
type RepoService struct {
	Store  store.Store
	GitHub RepoLister
}

// Sync pulls the user's repositories from GitHub and upserts them in one
// transaction, so a half-failed sync never leaves a torn snapshot. Returns
// the number of repositories synced.
func (s *RepoService) Sync(ctx context.Context, userID string) (int, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	remote, err := s.GitHub.ListUserRepos(ctx, user.AccessToken)
	if err != nil {
		log.Error("repository list fetch failed", "error", err, "user_id", userID)
		return 0, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	now := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, r := range remote {
			if _, err := tx.Repositories().UpsertRepository(ctx, snapshotFromGitHub(r, userID, now)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("repository sync failed", "error", err, "user_id", userID)
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Info("repositories synced", "user_id", userID, "count", len(remote))
	return len(remote), nil
}

// List returns the user's repositories, optionally filtered by a name
// substring.
func (s *RepoService) List(ctx context.Context, userID, search string) ([]domain.Repository, error) {
	return s.Store.Repositories().ListRepositoriesByOwner(ctx, userID, search)
}

// SetFavorite flips the favorite flag on a repository the user owns and
// returns the updated row.
func (s *RepoService) SetFavorite(ctx context.Context, userID, repoID string, favorite bool) (domain.Repository, error) {
	repo, err := s.Store.Repositories().GetRepositoryByID(ctx, repoID)
	if err != nil {
		return domain.Repository{}, err
	}
	if repo.OwnerID != userID {
		return domain.Repository{}, ErrForbidden
	}

	if err := s.Store.Repositories().SetFavorite(ctx, repoID, favorite); err != nil {
		return domain.Repository{}, err
	}
	repo.IsFavorite = favorite
	return repo, nil
}

// RepoComparison is two owned repositories side by side.
type RepoComparison struct {
	Base  domain.Repository `json:"base"`
	Other domain.Repository `json:"other"`
}

// Compare returns two repositories for side-by-side display. Both must
// belong to the caller.
func (s *RepoService) Compare(ctx context.Context, userID, baseID, otherID string) (RepoComparison, error) {
	rows, err := s.Store.Repositories().ListRepositoriesByIDs(ctx, []string{baseID, otherID})
	if err != nil {
		return RepoComparison{}, err
	}

	byID := make(map[string]domain.Repository, len(rows))
	for _, r := range rows {
		if r.OwnerID != userID {
			return RepoComparison{}, ErrForbidden
		}
		byID[r.ID] = r
	}

	base, okBase := byID[baseID]
	other, okOther := byID[otherID]
	if !okBase || !okOther {
		return RepoComparison{}, store.ErrNotFound
	}
	return RepoComparison{Base: base, Other: other}, nil
}

// snapshotFromGitHub maps a GitHub repository payload onto a local
// snapshot. The local id is assigned on first insert; the upsert keeps an
// existing id when the github_id is already known.
func snapshotFromGitHub(r github.Repo, ownerID string, syncedAt time.Time) domain.Repository {
	license := ""
	if r.License != nil {
		license = r.License.Name
	}

	return domain.Repository{
		ID:           idx.New().String(),
		GitHubID:     r.ID,
		OwnerID:      ownerID,
		Name:         r.Name,
		FullName:     r.FullName,
		Description:  r.Description,
		Language:     r.Language,
		Stars:        r.StargazersCount,
		Forks:        r.ForksCount,
		OpenIssues:   r.OpenIssuesCount,
		Watchers:     r.WatchersCount,
		Size:         r.Size,
		License:      license,
		Topics:       r.Topics,
		IsPrivate:    r.Private,
		PushedAt:     parseGitHubTime(r.PushedAt),
		LastSyncedAt: syncedAt,
	}
}

// parseGitHubTime parses GitHub's RFC 3339 timestamps, zero value on
// absent or malformed input.
func parseGitHubTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
