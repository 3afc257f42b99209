package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/krishx06/gitinsights-pro/internal/domain"
	"github.com/krishx06/gitinsights-pro/internal/github"
	"github.com/krishx06/gitinsights-pro/internal/store"
)

// commitActivityWindow is how far back the commit activity chart reaches.
const commitActivityWindow = 28 * 24 * time.Hour

// AnalyticsAPI is the slice of the GitHub client analytics reads from.
// Analytics always hits GitHub live with the caller's stored token; only
// the repository list itself is cached locally.
type AnalyticsAPI interface {
	FetchUser(ctx context.Context, token string) (github.UserProfile, error)
	GetRepo(ctx context.Context, token, owner, repo string) (github.Repo, error)
	GetLanguages(ctx context.Context, token, owner, repo string) (map[string]int64, error)
	ListContributors(ctx context.Context, token, owner, repo string) ([]github.ContributorEntry, error)
	ListCommitsSince(ctx context.Context, token, owner, repo string, since time.Time) ([]github.CommitEntry, error)
}

// AnalyticsService aggregates GitHub data into the shapes the frontend
// charts render directly.
type AnalyticsService struct {
	Store  store.Store
	GitHub AnalyticsAPI

	// now is swappable in tests to pin the activity window.
	Now func() time.Time
}

func (s *AnalyticsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *AnalyticsService) token(ctx context.Context, userID string) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.AccessToken, nil
}

// DashboardStats builds the overview stat cards: repository count, stars,
// forks, and followers. Counts come from the local snapshots; followers
// come live from GitHub.
func (s *AnalyticsService) DashboardStats(ctx context.Context, userID string) ([]domain.StatCard, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	repos, err := s.Store.Repositories().ListRepositoriesByOwner(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	profile, err := s.GitHub.FetchUser(ctx, user.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	totalStars, totalForks, privateCount := 0, 0, 0
	for _, r := range repos {
		totalStars += r.Stars
		totalForks += r.Forks
		if r.IsPrivate {
			privateCount++
		}
	}

	return []domain.StatCard{
		{
			Label:    "Total Repositories",
			Value:    len(repos),
			Icon:     "folder",
			Trend:    "neutral",
			Subtitle: fmt.Sprintf("%d private", privateCount),
		},
		{
			Label:    "Total Stars",
			Value:    totalStars,
			Icon:     "star",
			Trend:    "up",
			Subtitle: "across all repositories",
		},
		{
			Label:    "Total Forks",
			Value:    totalForks,
			Icon:     "git-fork",
			Trend:    "neutral",
			Subtitle: "across all repositories",
		},
		{
			Label:    "Followers",
			Value:    profile.Followers,
			Icon:     "users",
			Trend:    "up",
			Subtitle: fmt.Sprintf("@%s", profile.Login),
		},
	}, nil
}

// RepoStats fans out the three GitHub calls the overview panel needs and
// joins them into one response. Any failing leg fails the whole panel.
func (s *AnalyticsService) RepoStats(ctx context.Context, userID, owner, repo string) (domain.RepoStats, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return domain.RepoStats{}, err
	}

	var (
		details      github.Repo
		languages    map[string]int64
		contributors []github.ContributorEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = s.GitHub.GetRepo(gctx, token, owner, repo)
		return err
	})
	g.Go(func() error {
		var err error
		languages, err = s.GitHub.GetLanguages(gctx, token, owner, repo)
		return err
	})
	g.Go(func() error {
		var err error
		contributors, err = s.GitHub.ListContributors(gctx, token, owner, repo)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.RepoStats{}, err
	}

	return domain.RepoStats{
		Name:              details.Name,
		FullName:          details.FullName,
		Description:       details.Description,
		Stars:             details.StargazersCount,
		Forks:             details.ForksCount,
		Watchers:          details.WatchersCount,
		OpenIssues:        details.OpenIssuesCount,
		Language:          details.Language,
		LanguagesCount:    len(languages),
		ContributorsCount: len(contributors),
		Size:              details.Size,
		CreatedAt:         details.CreatedAt,
		UpdatedAt:         details.UpdatedAt,
		PushedAt:          details.PushedAt,
	}, nil
}

// Languages returns the byte share per language, largest first.
func (s *AnalyticsService) Languages(ctx context.Context, userID, owner, repo string) ([]domain.LanguageShare, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.GitHub.GetLanguages(ctx, token, owner, repo)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, bytes := range raw {
		total += bytes
	}

	shares := make([]domain.LanguageShare, 0, len(raw))
	for name, bytes := range raw {
		pct := 0.0
		if total > 0 {
			pct = float64(bytes) / float64(total) * 100
		}
		shares = append(shares, domain.LanguageShare{Name: name, Bytes: bytes, Percentage: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	return shares, nil
}

// Contributors returns the repository's contributor list.
func (s *AnalyticsService) Contributors(ctx context.Context, userID, owner, repo string) ([]domain.Contributor, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.GitHub.ListContributors(ctx, token, owner, repo)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Contributor, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Contributor{
			ID:            e.ID,
			Login:         e.Login,
			AvatarURL:     e.AvatarURL,
			Contributions: e.Contributions,
			HTMLURL:       e.HTMLURL,
		})
	}
	return out, nil
}

// CommitActivity buckets the last four weeks of commits per day. Every day
// in the window is present, zero or not, so charts get a continuous axis.
func (s *AnalyticsService) CommitActivity(ctx context.Context, userID, owner, repo string) ([]domain.CommitActivity, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}

	end := s.now().Truncate(24 * time.Hour)
	since := end.Add(-commitActivityWindow)

	commits, err := s.GitHub.ListCommitsSince(ctx, token, owner, repo, since)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int)
	for _, c := range commits {
		t, err := time.Parse(time.RFC3339, c.Commit.Author.Date)
		if err != nil {
			continue
		}
		perDay[t.UTC().Format("2006-01-02")]++
	}

	days := int(commitActivityWindow / (24 * time.Hour))
	out := make([]domain.CommitActivity, 0, days+1)
	for d := 0; d <= days; d++ {
		date := since.AddDate(0, 0, d).Format("2006-01-02")
		out = append(out, domain.CommitActivity{Date: date, Commits: perDay[date]})
	}
	return out, nil
}
