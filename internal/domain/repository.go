package domain

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"
)

// Repository is a repository as listed by repos/show.
type Repository struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Owner       string  `json:"owner"`
	URL         string  `json:"url"`
	Homepage    *string `json:"homepage,omitempty"`

	Watchers   int `json:"watchers"`
	Forks      int `json:"forks"`
	OpenIssues int `json:"open_issues"`

	Private bool `json:"private"`
	Fork    bool `json:"fork"`
}

func (r Repository) String() string {
	return fmt.Sprintf("<<Repository %s/%s>>", r.Owner, r.Name)
}

// BranchMap maps a branch name to the SHA of its head commit.
type BranchMap map[string]string

// Names returns the branch names in lexical order.
func (b BranchMap) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hash returns the head of the named branch as a git object hash.
// ok is false when the branch is unknown or its value is not a full SHA-1.
func (b BranchMap) Hash(name string) (plumbing.Hash, bool) {
	sha, found := b[name]
	if !found || !plumbing.IsHash(sha) {
		return plumbing.ZeroHash, false
	}
	return plumbing.NewHash(sha), true
}
