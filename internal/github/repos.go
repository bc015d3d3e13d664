package github

import (
	"context"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/mapper"
)

type ReposService struct{ c *Client }

// ForUser lists the repositories owned by user.
func (s *ReposService) ForUser(ctx context.Context, user string) ([]domain.Repository, error) {
	const op = "github.repos.for_user"
	u, err := segment(op, "user", user)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "repos", "show", u)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindRepositories, req, mapper.DecodeRepositories)
}

func (s *ReposService) Show(ctx context.Context, user, repo string) (domain.Repository, error) {
	const op = "github.repos.show"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return domain.Repository{}, err
	}
	req, err := s.c.endpoint(op, false, "repos", "show", u, r)
	if err != nil {
		return domain.Repository{}, err
	}
	return fetch(ctx, s.c, op, mapper.KindRepository, req, mapper.DecodeRepository)
}

// Watched lists the repositories user watches.
func (s *ReposService) Watched(ctx context.Context, user string) ([]domain.Repository, error) {
	const op = "github.repos.watched"
	u, err := segment(op, "user", user)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "repos", "watched", u)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindRepositories, req, mapper.DecodeRepositories)
}

// Branches maps each branch of user/repo to its head commit.
func (s *ReposService) Branches(ctx context.Context, user, repo string) (domain.BranchMap, error) {
	const op = "github.repos.branches"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "repos", "show", u, r, "branches")
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindBranches, req, mapper.DecodeBranches)
}

func userRepo(op, user, repo string) (string, string, error) {
	u, err := segment(op, "user", user)
	if err != nil {
		return "", "", err
	}
	r, err := segment(op, "repo", repo)
	if err != nil {
		return "", "", err
	}
	return u, r, nil
}
