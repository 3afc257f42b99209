package domain

// StatCard is one tile on the dashboard overview (total repos, stars, ...).
// Shape matches what the frontend widgets render directly.
type StatCard struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Icon     string `json:"icon"`
	Change   string `json:"change"`
	Trend    string `json:"trend"`
	Subtitle string `json:"subtitle"`
}

// LanguageShare is one row of a repository's language breakdown.
type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// Contributor is a trimmed GitHub contributor entry.
type Contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	Contributions int    `json:"contributions"`
	HTMLURL       string `json:"html_url"`
}

// CommitActivity is the commit count for a single day, date formatted as
// YYYY-MM-DD.
type CommitActivity struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}

// RepoStats is the aggregated per-repository overview panel.
type RepoStats struct {
	Name              string `json:"name"`
	FullName          string `json:"full_name"`
	Description       string `json:"description"`
	Stars             int    `json:"stars"`
	Forks             int    `json:"forks"`
	Watchers          int    `json:"watchers"`
	OpenIssues        int    `json:"open_issues"`
	Language          string `json:"language"`
	LanguagesCount    int    `json:"languages_count"`
	ContributorsCount int    `json:"contributors_count"`
	Size              int    `json:"size"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
	PushedAt          string `json:"pushed_at"`
}
