package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s *Store, githubID int64) domain.User {
	t.Helper()

	u, err := s.Users().UpsertUser(context.Background(), domain.User{
		ID:          idx.New().String(),
		GitHubID:    githubID,
		Username:    "octocat",
		AvatarURL:   "https://avatars.example/octocat",
		Email:       "octo@example.com",
		AccessToken: "gho_token",
	})
	require.NoError(t, err)
	return u
}

func TestUsersUpsert(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	first := seedUser(t, s, 42)
	require.NotEmpty(t, first.ID)
	require.Equal(t, int64(42), first.GitHubID)

	t.Run("same github id keeps one row and refreshes fields", func(t *testing.T) {
		second, err := s.Users().UpsertUser(ctx, domain.User{
			ID:          idx.New().String(), // discarded on conflict
			GitHubID:    42,
			Username:    "octocat-renamed",
			AvatarURL:   "https://avatars.example/new",
			Email:       "new@example.com",
			AccessToken: "gho_rotated",
		})
		require.NoError(t, err)

		require.Equal(t, first.ID, second.ID)
		require.Equal(t, first.CreatedAt, second.CreatedAt)
		require.Equal(t, "octocat-renamed", second.Username)
		require.Equal(t, "gho_rotated", second.AccessToken)
		require.Equal(t, "new@example.com", second.Email)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, int64(42), got.GitHubID)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRepositoriesUpsert(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, 1)

	repo := domain.Repository{
		ID:       idx.New().String(),
		GitHubID: 100,
		OwnerID:  owner.ID,
		Name:     "gitinsights",
		FullName: "octocat/gitinsights",
		Language: "Go",
		Stars:    10,
		Topics:   []string{"analytics", "github"},
		PushedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	saved, err := s.Repositories().UpsertRepository(ctx, repo)
	require.NoError(t, err)
	require.Equal(t, []string{"analytics", "github"}, saved.Topics)
	require.False(t, saved.IsFavorite)

	t.Run("re-sync keeps favorite flag", func(t *testing.T) {
		require.NoError(t, s.Repositories().SetFavorite(ctx, saved.ID, true))

		repo.Stars = 25
		again, err := s.Repositories().UpsertRepository(ctx, repo)
		require.NoError(t, err)
		require.Equal(t, saved.ID, again.ID)
		require.Equal(t, 25, again.Stars)
		require.True(t, again.IsFavorite)
	})

	t.Run("set favorite on unknown id", func(t *testing.T) {
		err := s.Repositories().SetFavorite(ctx, "missing", true)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRepositoriesList(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, 2)

	mk := func(githubID int64, name string, pushed time.Time) domain.Repository {
		r, err := s.Repositories().UpsertRepository(ctx, domain.Repository{
			ID:       idx.New().String(),
			GitHubID: githubID,
			OwnerID:  owner.ID,
			Name:     name,
			FullName: "octocat/" + name,
			PushedAt: pushed,
		})
		require.NoError(t, err)
		return r
	}

	old := mk(200, "archive-tool", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	recent := mk(201, "insights-api", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	t.Run("ordered by most recently pushed", func(t *testing.T) {
		repos, err := s.Repositories().ListRepositoriesByOwner(ctx, owner.ID, "")
		require.NoError(t, err)
		require.Len(t, repos, 2)
		require.Equal(t, recent.ID, repos[0].ID)
	})

	t.Run("search filters by name substring", func(t *testing.T) {
		repos, err := s.Repositories().ListRepositoriesByOwner(ctx, owner.ID, "insights")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		require.Equal(t, "insights-api", repos[0].Name)
	})

	t.Run("search with LIKE metacharacters matches literally", func(t *testing.T) {
		repos, err := s.Repositories().ListRepositoriesByOwner(ctx, owner.ID, "%")
		require.NoError(t, err)
		require.Empty(t, repos)
	})

	t.Run("list by ids skips unknown", func(t *testing.T) {
		repos, err := s.Repositories().ListRepositoriesByIDs(ctx, []string{old.ID, "missing"})
		require.NoError(t, err)
		require.Len(t, repos, 1)
		require.Equal(t, old.ID, repos[0].ID)
	})

	t.Run("empty id list", func(t *testing.T) {
		repos, err := s.Repositories().ListRepositoriesByIDs(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, repos)
	})
}

func TestDashboardsCRUD(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, 3)
	other := seedUser(t, s, 4)

	d := domain.Dashboard{
		ID:      idx.New().String(),
		UserID:  owner.ID,
		Name:    "velocity",
		Widgets: json.RawMessage(`[{"type":"commit-chart","w":6}]`),
	}
	require.NoError(t, s.Dashboards().CreateDashboard(ctx, d))

	t.Run("get is owner scoped", func(t *testing.T) {
		got, err := s.Dashboards().GetDashboard(ctx, d.ID, owner.ID)
		require.NoError(t, err)
		require.Equal(t, "velocity", got.Name)
		require.JSONEq(t, `[{"type":"commit-chart","w":6}]`, string(got.Widgets))

		_, err = s.Dashboards().GetDashboard(ctx, d.ID, other.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update replaces name and widgets", func(t *testing.T) {
		d.Name = "team velocity"
		d.Widgets = json.RawMessage(`[]`)
		require.NoError(t, s.Dashboards().UpdateDashboard(ctx, d))

		got, err := s.Dashboards().GetDashboard(ctx, d.ID, owner.ID)
		require.NoError(t, err)
		require.Equal(t, "team velocity", got.Name)
	})

	t.Run("update rejected for non-owner", func(t *testing.T) {
		stolen := d
		stolen.UserID = other.ID
		err := s.Dashboards().UpdateDashboard(ctx, stolen)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list returns most recently updated first", func(t *testing.T) {
		second := domain.Dashboard{
			ID:      idx.New().String(),
			UserID:  owner.ID,
			Name:    "releases",
			Widgets: json.RawMessage(`[]`),
		}
		require.NoError(t, s.Dashboards().CreateDashboard(ctx, second))

		list, err := s.Dashboards().ListDashboardsByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("delete is owner scoped", func(t *testing.T) {
		require.ErrorIs(t, s.Dashboards().DeleteDashboard(ctx, d.ID, other.ID), store.ErrNotFound)
		require.NoError(t, s.Dashboards().DeleteDashboard(ctx, d.ID, owner.ID))
		_, err := s.Dashboards().GetDashboard(ctx, d.ID, owner.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, 5)

	sentinel := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Repositories().UpsertRepository(ctx, domain.Repository{
			ID:       idx.New().String(),
			GitHubID: 300,
			OwnerID:  owner.ID,
			Name:     "doomed",
			FullName: "octocat/doomed",
		})
		require.NoError(t, err)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	repos, err := s.Repositories().ListRepositoriesByOwner(ctx, owner.ID, "")
	require.NoError(t, err)
	require.Empty(t, repos)
}
