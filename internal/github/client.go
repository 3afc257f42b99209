// Package github is the outbound client for the two GitHub surfaces this
// service talks to: the OAuth web flow (github.com) and the REST API
// (api.github.com). Every call carries the request context and the client's
// bounded timeout; a hung GitHub must not pin our handlers.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultOAuthBaseURL = "https://github.com"
	defaultAPIBaseURL   = "https://api.github.com"

	defaultTimeout = 10 * time.Second

	acceptV3  = "application/vnd.github.v3+json"
	userAgent = "gitinsights-pro"
)

// ErrNoAccessToken reports a token-endpoint response without an access
// token (GitHub signals bad codes with a 200 and an error body).
var ErrNoAccessToken = errors.New("github: token response missing access_token")

// StatusError is a non-2xx REST API response. Handlers proxying GitHub data
// forward the code; the auth flow collapses it into a generic upstream
// failure.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: %s returned %d", e.Path, e.Code)
}

// Config carries the OAuth app credentials and optional overrides for the
// GitHub endpoints (tests point them at a local httptest server).
type Config struct {
	ClientID     string
	ClientSecret string

	OAuthBaseURL string
	APIBaseURL   string
	Timeout      time.Duration
}

type Client struct {
	clientID     string
	clientSecret string
	oauthBase    string
	apiBase      string
	http         *http.Client
}

func NewClient(cfg Config) *Client {
	oauthBase := cfg.OAuthBaseURL
	if oauthBase == "" {
		oauthBase = defaultOAuthBaseURL
	}
	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		oauthBase:    strings.TrimRight(oauthBase, "/"),
		apiBase:      strings.TrimRight(apiBase, "/"),
		http:         &http.Client{Timeout: timeout},
	}
}

// AuthorizeURL builds the browser redirect target for the login flow.
func (c *Client) AuthorizeURL(callbackURL string, scopes []string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", callbackURL)
	q.Set("scope", strings.Join(scopes, " "))
	return c.oauthBase + "/login/oauth/authorize?" + q.Encode()
}

// ExchangeCode redeems an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.oauthBase+"/login/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Path: "/login/oauth/access_token"}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return payload.AccessToken, nil
}

// UserProfile is the authenticated user as GitHub reports it.
type UserProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`

	Followers         int `json:"followers"`
	PublicRepos       int `json:"public_repos"`
	TotalPrivateRepos int `json:"total_private_repos"`
}

// FetchUser returns the identity behind an access token.
func (c *Client) FetchUser(ctx context.Context, token string) (UserProfile, error) {
	var profile UserProfile
	if err := c.getJSON(ctx, token, "/user", &profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}

// Email is one entry of the authenticated user's email list.
type Email struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// FetchPrimaryEmail returns the user's best email: primary and verified if
// one exists, otherwise the first entry. The error is expected when the
// token lacks the email scope; callers supply their own fallback.
func (c *Client) FetchPrimaryEmail(ctx context.Context, token string) (string, error) {
	var emails []Email
	if err := c.getJSON(ctx, token, "/user/emails", &emails); err != nil {
		return "", err
	}
	if len(emails) == 0 {
		return "", errors.New("github: empty email list")
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return emails[0].Email, nil
}

// Repo is a repository as GitHub reports it.
type Repo struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	WatchersCount   int      `json:"watchers_count"`
	Size            int      `json:"size"`
	Topics          []string `json:"topics"`
	Private         bool     `json:"private"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	License         *struct {
		Name string `json:"name"`
	} `json:"license"`
}

// ListUserRepos returns the authenticated user's repositories, most
// recently updated first.
func (c *Client) ListUserRepos(ctx context.Context, token string) ([]Repo, error) {
	var repos []Repo
	if err := c.getJSON(ctx, token, "/user/repos?per_page=100&sort=updated&type=all", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepo returns a single repository by owner and name.
func (c *Client) GetRepo(ctx context.Context, token, owner, repo string) (Repo, error) {
	var r Repo
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, token, path, &r); err != nil {
		return Repo{}, err
	}
	return r, nil
}

// GetLanguages returns a repository's language -> bytes map.
func (c *Client) GetLanguages(ctx context.Context, token, owner, repo string) (map[string]int64, error) {
	var langs map[string]int64
	path := fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, token, path, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// ContributorEntry is one row of a repository's contributor list.
type ContributorEntry struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	Contributions int    `json:"contributions"`
	HTMLURL       string `json:"html_url"`
}

// ListContributors returns up to 100 non-anonymous contributors.
func (c *Client) ListContributors(ctx context.Context, token, owner, repo string) ([]ContributorEntry, error) {
	var contributors []ContributorEntry
	path := fmt.Sprintf("/repos/%s/%s/contributors?per_page=100&anon=false",
		url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, token, path, &contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}

// CommitEntry is the slice of a commit object we aggregate on.
type CommitEntry struct {
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// ListCommitsSince returns commits authored after since, newest first.
func (c *Client) ListCommitsSince(ctx context.Context, token, owner, repo string, since time.Time) ([]CommitEntry, error) {
	var commits []CommitEntry
	path := fmt.Sprintf("/repos/%s/%s/commits?since=%s&per_page=100",
		url.PathEscape(owner), url.PathEscape(repo),
		url.QueryEscape(since.UTC().Format(time.RFC3339)))
	if err := c.getJSON(ctx, token, path, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptV3)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Path: strippedPath(path)}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// strippedPath drops the query string for error messages.
func strippedPath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
