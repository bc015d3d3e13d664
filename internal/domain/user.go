package domain

import "fmt"

// User is a GitHub account as returned by user/show and user/search.
//
// The two endpoints overlap but disagree on a few fields: search results carry
// an opaque document id ("user-1779") and a relevance score, while user/show
// carries the numeric account id and the *-count fields. Private fields are only
// present when the request was authenticated as the same user.
type User struct {
	ID       int    `json:"id,omitempty"`
	SearchID string `json:"search_id,omitempty"`

	Login    string  `json:"login,omitempty"`
	Name     string  `json:"name,omitempty"`
	Fullname string  `json:"fullname,omitempty"`
	Username string  `json:"username,omitempty"`
	Email    string  `json:"email,omitempty"`
	Location string  `json:"location,omitempty"`
	Language string  `json:"language,omitempty"`
	Blog     string  `json:"blog,omitempty"`
	Company  *string `json:"company,omitempty"`
	Type     string  `json:"type,omitempty"`

	Actions   int     `json:"actions,omitempty"`
	Repos     int     `json:"repos,omitempty"`
	Followers int     `json:"followers,omitempty"`
	Score     float64 `json:"score,omitempty"`

	FollowingCount  int `json:"following_count,omitempty"`
	FollowersCount  int `json:"followers_count,omitempty"`
	PublicGistCount int `json:"public_gist_count,omitempty"`
	PublicRepoCount int `json:"public_repo_count,omitempty"`

	Created   Timestamp `json:"created,omitempty"`
	Pushed    Timestamp `json:"pushed,omitempty"`
	CreatedAt Timestamp `json:"created_at,omitempty"`

	// Private data, visible to the authenticated owner only.
	Plan                  *Plan `json:"plan,omitempty"`
	DiskUsage             int   `json:"disk_usage,omitempty"`
	Collaborators         int   `json:"collaborators,omitempty"`
	OwnedPrivateRepoCount int   `json:"owned_private_repo_count,omitempty"`
	TotalPrivateRepoCount int   `json:"total_private_repo_count,omitempty"`
	PrivateGistCount      int   `json:"private_gist_count,omitempty"`
}

func (u User) String() string {
	return fmt.Sprintf("<<User %s>>", u.Name)
}

// Plan is the billing plan of an authenticated user.
type Plan struct {
	Name          string `json:"name"`
	Collaborators int    `json:"collaborators"`
	Space         int    `json:"space"`
	PrivateRepos  int    `json:"private_repos"`
}

// Key is a public SSH key registered on the authenticated account.
type Key struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Key   string `json:"key"`
}
