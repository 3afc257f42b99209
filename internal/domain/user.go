package domain

import "time"

// User is the persisted account record, keyed one-to-one with a GitHub
// identity. Profile fields are refreshed from GitHub on every login; the
// provider is the source of truth for everything except ID and CreatedAt.
type User struct {
	ID        string `json:"id"`
	GitHubID  int64  `json:"githubId"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`

	// AccessToken is GitHub's live token for API calls on the user's
	// behalf. Rotation is GitHub's concern; we just store the latest.
	AccessToken string `json:"accessToken"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
