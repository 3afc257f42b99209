package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/store"
	"github.com/krishx06/gitinsights-pro/pkg/idx"
	"github.com/krishx06/gitinsights-pro/pkg/jwtx"
	"github.com/krishx06/gitinsights-pro/pkg/slogx"
)

var (
	// ErrInvalidRequest covers callbacks without an authorization code.
	ErrInvalidRequest = errors.New("invalid_request")

	// ErrCodeReplayed is a callback carrying a code this process already
	// redeemed. Surfaced to the client as a 400, never retried upstream.
	ErrCodeReplayed = errors.New("code_replayed")

	// ErrUpstreamAuth is any failure talking to GitHub during the exchange.
	ErrUpstreamAuth = errors.New("upstream_auth_failed")

	// ErrPersistence is a database failure after a successful exchange.
	ErrPersistence = errors.New("persistence_failed")

	// ErrConfiguration is a deployment problem, such as an unusable signing
	// key. Startup validation should make this unreachable in practice.
	ErrConfiguration = errors.New("configuration_error")
)

// oauthScopes asks for profile, email, and repository read access in one
// consent screen.
var oauthScopes = []string{"read:user", "user:email", "repo"}

// noEmailFallback is stored when the email fetch fails or comes back empty,
// which happens for accounts with fully private email settings.
const noEmailFallback = "no-email@github.com"

// OAuthExchanger is the slice of the GitHub client the auth flow needs.
type OAuthExchanger interface {
	AuthorizeURL(callbackURL string, scopes []string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchUser(ctx context.Context, token string) (github.UserProfile, error)
	FetchPrimaryEmail(ctx context.Context, token string) (string, error)
}

// AuthService runs the GitHub OAuth web flow end to end: redirect out,
// exchange the callback code, reconcile the identity, mint a session token.
type AuthService struct {
	Store  store.Store
	GitHub OAuthExchanger
	Guard  *NonceGuard
	Signer *jwtx.Signer

	// CallbackURL is our own /auth/callback as GitHub should call it.
	CallbackURL string

	// FrontendURL is where the browser lands after a successful login.
	FrontendURL string
}

// LoginURL returns the GitHub consent screen redirect target.
func (s *AuthService) LoginURL() string {
	return s.GitHub.AuthorizeURL(s.CallbackURL, oauthScopes)
}

// Callback redeems an authorization code and returns the frontend redirect
// URL carrying the session token.
//
// The code is marked used before the first network call. A concurrent or
// replayed callback with the same code fails fast with ErrCodeReplayed
// instead of burning a request against GitHub's token endpoint.
func (s *AuthService) Callback(ctx context.Context, code string) (string, error) {
	log := slogx.FromContext(ctx)

	if code == "" {
		return "", fmt.Errorf("%w: missing authorization code", ErrInvalidRequest)
	}
	if !s.Guard.MarkUsed(code) {
		log.Warn("authorization code replayed")
		return "", ErrCodeReplayed
	}

	accessToken, err := s.GitHub.ExchangeCode(ctx, code)
	if err != nil {
		log.Error("token exchange failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	profile, err := s.GitHub.FetchUser(ctx, accessToken)
	if err != nil {
		log.Error("profile fetch failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	// Email is best effort: accounts can hide it entirely, and a login
	// must not fail over a missing address.
	email, err := s.GitHub.FetchPrimaryEmail(ctx, accessToken)
	if err != nil || email == "" {
		log.Info("no usable email on profile, storing placeholder", "github_id", profile.ID)
		email = noEmailFallback
	}

	user, err := s.Store.Users().UpsertUser(ctx, domain.User{
		ID:          idx.New().String(), // discarded on conflict, kept on first sight
		GitHubID:    profile.ID,
		Username:    profile.Login,
		AvatarURL:   profile.AvatarURL,
		Email:       email,
		AccessToken: accessToken,
	})
	if err != nil {
		log.Error("user upsert failed", "error", err, "github_id", profile.ID)
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	sessionToken, err := s.Signer.Sign(user.ID)
	if err != nil {
		log.Error("session token signing failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	log.Info("login completed", "user_id", user.ID, "username", user.Username)
	return s.FrontendURL + "/dashboard?token=" + url.QueryEscape(sessionToken), nil
}
