package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/internal/store/drivers/sqlite"
	"github.com/krishx06/gitinsights-pro/pkg/idx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// newTestGitHub runs a stub GitHub on httptest and returns a client wired
// to it.
func newTestGitHub(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return github.NewClient(github.Config{
		ClientID:     "cid",
		ClientSecret: "csecret",
		OAuthBaseURL: srv.URL,
		APIBaseURL:   srv.URL,
	})
}

func seedUser(t *testing.T, s store.Store, githubID int64, token string) domain.User {
	t.Helper()
	u, err := s.Users().UpsertUser(context.Background(), domain.User{
		ID:          idx.New().String(),
		GitHubID:    githubID,
		Username:    "octocat",
		AvatarURL:   "https://a.example/octocat",
		Email:       "octocat@example.com",
		AccessToken: token,
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	return u
}
