package domain

import "time"

// Repository is a synced snapshot of a GitHub repository owned by a user.
// Rows are upserted by GitHubID during sync; nothing here is authoritative,
// GitHub is.
type Repository struct {
	ID          string   `json:"id"`
	GitHubID    int64    `json:"githubId"`
	OwnerID     string   `json:"ownerId"`
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	OpenIssues  int      `json:"openIssues"`
	Watchers    int      `json:"watchers"`
	Size        int      `json:"size"`
	License     string   `json:"license"`
	Topics      []string `json:"topics"`
	IsPrivate   bool     `json:"isPrivate"`
	IsFavorite  bool     `json:"isFavorite"`

	PushedAt     time.Time `json:"pushedAt"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
