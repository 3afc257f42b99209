package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/internal/store/drivers/sqlite"
	"github.com/krishx06/gitinsights-pro/pkg/jwtx"
)

// stubGitHub serves every GitHub endpoint the handlers reach during tests.
func stubGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"gho_live","token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"login":"octocat","avatar_url":"https://a.example/42","followers":9}`))
	})
	mux.HandleFunc("GET /user/emails", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"email":"main@example.com","primary":true,"verified":true}]`))
	})
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":101,"name":"alpha","full_name":"octocat/alpha","language":"Go",
			 "stargazers_count":12,"forks_count":3,"pushed_at":"2026-02-10T08:00:00Z"}
		]`))
	})
	mux.HandleFunc("GET /repos/octocat/alpha/languages", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Go":9000,"Makefile":1000}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type testEnv struct {
	server *httptest.Server
	store  store.Store
	signer *jwtx.Signer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	gh := github.NewClient(github.Config{
		ClientID:     "cid",
		ClientSecret: "csecret",
		OAuthBaseURL: stubGitHub(t).URL,
		APIBaseURL:   stubGitHub(t).URL,
	})

	signer := jwtx.NewSigner("test-secret", "gitinsights", 0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(signer, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:       st,
		GitHub:      gh,
		Guard:       service.NewNonceGuard(),
		Signer:      signer,
		CallbackURL: "http://localhost:8080/auth/callback",
		FrontendURL: "http://localhost:5173",
	}
	router.UserService = &service.UserService{Store: st}
	router.RepoService = &service.RepoService{Store: st, GitHub: gh}
	router.DashboardService = &service.DashboardService{Store: st}
	router.AnalyticsService = &service.AnalyticsService{Store: st, GitHub: gh}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, store: st, signer: signer}
}

// login runs the callback flow and returns the minted session token.
func (e *testEnv) login(t *testing.T, code string) string {
	t.Helper()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(e.server.URL + "/auth/callback?code=" + code)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	token := loc.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestLoginRedirect(t *testing.T) {
	env := newTestEnv(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(env.server.URL + "/auth/login")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.Contains(t, loc, "/login/oauth/authorize?")
	assert.Contains(t, loc, "client_id=cid")
}

func TestCallbackAndMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	resp := env.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := decode[domain.User](t, resp)
	assert.Equal(t, int64(42), user.GitHubID)
	assert.Equal(t, "octocat", user.Username)
	assert.Equal(t, "main@example.com", user.Email)
}

func TestCallbackReplay(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "reused-code")

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(env.server.URL + "/auth/callback?code=reused-code")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "OAuth code already used")
}

func TestCallbackMissingCode(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/auth/callback", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/auth/me", "/api/repos", "/api/dashboards", "/api/dashboard/stats"} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer", path)
	}
}

func TestProtectedRoutesRejectForgedToken(t *testing.T) {
	env := newTestEnv(t)

	forged, err := jwtx.NewSigner("other-secret", "gitinsights", 0).Sign("someone")
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/auth/me", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRepoSyncListFavorite(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	resp := env.do(t, http.MethodPost, "/api/repos/sync", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sync := decode[SyncResponse](t, resp)
	assert.Equal(t, 1, sync.Synced)

	resp = env.do(t, http.MethodGet, "/api/repos", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	repos := decode[[]domain.Repository](t, resp)
	require.Len(t, repos, 1)
	assert.Equal(t, "octocat/alpha", repos[0].FullName)

	resp = env.do(t, http.MethodPatch, "/api/repos/"+repos[0].ID+"/favorite", token,
		map[string]bool{"favorite": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[domain.Repository](t, resp)
	assert.True(t, updated.IsFavorite)
}

func TestDashboardLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	resp := env.do(t, http.MethodPost, "/api/dashboards", token,
		map[string]any{"name": "Velocity", "widgets": []map[string]string{{"type": "stars"}}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Dashboard](t, resp)

	resp = env.do(t, http.MethodPut, "/api/dashboards/"+created.ID, token,
		map[string]any{"name": "Velocity v2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[domain.Dashboard](t, resp)
	assert.Equal(t, "Velocity v2", updated.Name)

	resp = env.do(t, http.MethodDelete, "/api/dashboards/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/dashboards/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	resp := env.do(t, http.MethodPost, "/api/dashboards", token, map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRepoLanguagesProxy(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	resp := env.do(t, http.MethodGet, "/api/repos/octocat/alpha/languages", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shares := decode[[]domain.LanguageShare](t, resp)
	require.Len(t, shares, 2)
	assert.Equal(t, "Go", shares[0].Name)
	assert.InDelta(t, 90.0, shares[0].Percentage, 0.001)
}

func TestRepoAnalyticsForwardsUpstreamStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "good-code")

	// The stub has no handler for this repo, so GitHub answers 404.
	resp := env.do(t, http.MethodGet, "/api/repos/octocat/ghost/languages", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	live := decode[HealthResponse](t, resp)
	assert.Equal(t, "ok", live.Status)

	resp = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decode[HealthResponse](t, resp)
	require.NotNil(t, ready.Checks)
	assert.Equal(t, "ok", ready.Checks.Database)
}
