package domain

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// Person identifies a commit author or committer.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Login string `json:"login,omitempty"`
}

func (p Person) String() string {
	if p.Email == "" {
		return p.Name
	}
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

// CommitRef points at another commit, e.g. a parent.
type CommitRef struct {
	ID string `json:"id"`
}

// Commit is a single entry of commits/list or commits/show.
type Commit struct {
	ID      string `json:"id"`
	Tree    string `json:"tree"`
	Message string `json:"message"`
	URL     string `json:"url"`

	CommittedDate Timestamp `json:"committed_date"`
	AuthoredDate  Timestamp `json:"authored_date"`

	Parents   []CommitRef `json:"parents"`
	Author    Person      `json:"author"`
	Committer Person      `json:"committer"`
}

// Hash returns the commit id as a git object hash (ZeroHash if it is not a SHA-1).
func (c Commit) Hash() plumbing.Hash {
	if !plumbing.IsHash(c.ID) {
		return plumbing.ZeroHash
	}
	return plumbing.NewHash(c.ID)
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

func (c Commit) String() string {
	return fmt.Sprintf("<<Commit %s>>", c.ID)
}
