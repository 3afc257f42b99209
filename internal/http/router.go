package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/krishx06/gitinsights-pro/internal/service"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/httpx"
	"github.com/krishx06/gitinsights-pro/pkg/jwtx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"

	_ "github.com/krishx06/gitinsights-pro/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	UserService      *service.UserService
	RepoService      *service.RepoService
	DashboardService *service.DashboardService
	AnalyticsService *service.AnalyticsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRepos()
	r.registerDashboards()
	r.registerAnalytics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			GitInsights Pro API
//	@version		1.0.0
//	@description	Backend for the GitInsights Pro dashboard: GitHub OAuth login,
//	@description	repository sync, custom dashboards, and live repository analytics.
//	@description
//	@description				Sessions are HS256 JWTs minted at login and presented as Bearer tokens.
//
//	@contact.name				GitInsights Pro
//	@contact.url				https://github.com/krishx06/gitinsights-pro
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &AuthLoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Callback is limited hardest: every attempt burns a token-endpoint
	// call against GitHub.
	callback := &AuthCallbackHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /auth/callback",
		httpx.Chain(callback,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	me := &MeHandler{UserService: r.UserService}
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(me,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRepos() {
	h := &ReposHandler{RepoService: r.RepoService}

	r.Mux.Handle("GET /api/repos",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Sync fans out to GitHub, keep it moderate.
	r.Mux.Handle("POST /api/repos/sync",
		httpx.Chain(http.HandlerFunc(h.HandleSync),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /api/repos/{id}/favorite",
		httpx.Chain(http.HandlerFunc(h.HandleFavorite),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /api/repos/{id}/compare",
		httpx.Chain(http.HandlerFunc(h.HandleCompare),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDashboards() {
	h := &DashboardsHandler{DashboardService: r.DashboardService}

	authn := httpx.AuthnMiddleware(r.verifier)
	limit := httpx.RateLimitByUser(httpx.LenientLimit)

	r.Mux.Handle("GET /api/dashboards", httpx.Chain(http.HandlerFunc(h.HandleList), authn, limit))
	r.Mux.Handle("POST /api/dashboards", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn, limit))
	r.Mux.Handle("GET /api/dashboards/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn, limit))
	r.Mux.Handle("PUT /api/dashboards/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn, limit))
	r.Mux.Handle("DELETE /api/dashboards/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn, limit))
}

func (r *Router) registerAnalytics() {
	h := &AnalyticsHandler{AnalyticsService: r.AnalyticsService}

	authn := httpx.AuthnMiddleware(r.verifier)

	// Everything here proxies live GitHub reads.
	limit := httpx.RateLimitByUser(httpx.ModerateLimit)

	r.Mux.Handle("GET /api/dashboard/stats", httpx.Chain(http.HandlerFunc(h.HandleDashboardStats), authn, limit))
	r.Mux.Handle("GET /api/repos/{owner}/{repo}/stats", httpx.Chain(http.HandlerFunc(h.HandleRepoStats), authn, limit))
	r.Mux.Handle("GET /api/repos/{owner}/{repo}/languages", httpx.Chain(http.HandlerFunc(h.HandleLanguages), authn, limit))
	r.Mux.Handle("GET /api/repos/{owner}/{repo}/contributors", httpx.Chain(http.HandlerFunc(h.HandleContributors), authn, limit))
	r.Mux.Handle("GET /api/repos/{owner}/{repo}/commits", httpx.Chain(http.HandlerFunc(h.HandleCommits), authn, limit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
