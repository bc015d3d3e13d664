package github

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/mapper"
)

// DefaultBranch is used when no branch is given.
const DefaultBranch = "master"

type CommitsService struct{ c *Client }

// ForBranch lists the recent commits of a branch, newest first.
func (s *CommitsService) ForBranch(ctx context.Context, user, repo, branch string) ([]domain.Commit, error) {
	const op = "github.commits.for_branch"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return nil, err
	}
	b, err := branchSegment(op, branch)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "commits", "list", u, r, b)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindCommits, req, mapper.DecodeCommits)
}

// ForFile lists the commits of a branch that touched path.
func (s *CommitsService) ForFile(ctx context.Context, user, repo, path, branch string) ([]domain.Commit, error) {
	const op = "github.commits.for_file"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return nil, err
	}
	b, err := branchSegment(op, branch)
	if err != nil {
		return nil, err
	}
	p, err := filePath(op, path)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "commits", "list", u, r, b, p)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindCommits, req, mapper.DecodeCommits)
}

// Show returns one commit by its full 40 character SHA-1.
func (s *CommitsService) Show(ctx context.Context, user, repo, sha string) (domain.Commit, error) {
	const op = "github.commits.show"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return domain.Commit{}, err
	}
	if !plumbing.IsHash(sha) {
		return domain.Commit{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: %q is not a commit sha", domain.ErrInvalidConfig, sha),
		}
	}
	req, err := s.c.endpoint(op, false, "commits", "show", u, r, sha)
	if err != nil {
		return domain.Commit{}, err
	}
	return fetch(ctx, s.c, op, mapper.KindCommit, req, mapper.DecodeCommit)
}

func branchSegment(op, branch string) (string, error) {
	if branch == "" {
		branch = DefaultBranch
	}
	return segment(op, "branch", branch)
}
