package domain

import "fmt"

// Issue is a repository issue.
type Issue struct {
	Number   int     `json:"number"`
	Votes    int     `json:"votes"`
	Position float64 `json:"position"`

	User  string `json:"user"`
	Title string `json:"title"`
	Body  string `json:"body"`
	State string `json:"state"`

	CreatedAt Timestamp  `json:"created_at"`
	UpdatedAt Timestamp  `json:"updated_at"`
	ClosedAt  *Timestamp `json:"closed_at,omitempty"`
}

// IssueState selects the issues/list bucket.
type IssueState string

const (
	IssueOpen   IssueState = "open"
	IssueClosed IssueState = "closed"
)

func (i Issue) String() string {
	return fmt.Sprintf("<<Issue #%d>>", i.Number)
}
