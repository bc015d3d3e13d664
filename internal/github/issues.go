package github

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/mapper"
)

type IssuesService struct{ c *Client }

// List returns the issues of user/repo in the given state ("" means open).
func (s *IssuesService) List(ctx context.Context, user, repo string, state domain.IssueState) ([]domain.Issue, error) {
	const op = "github.issues.list"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return nil, err
	}
	if state == "" {
		state = domain.IssueOpen
	}
	if state != domain.IssueOpen && state != domain.IssueClosed {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: issue state %q (want open or closed)", domain.ErrInvalidConfig, state),
		}
	}
	req, err := s.c.endpoint(op, false, "issues", "list", u, r, string(state))
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindIssues, req, mapper.DecodeIssues)
}

func (s *IssuesService) Show(ctx context.Context, user, repo string, number int) (domain.Issue, error) {
	const op = "github.issues.show"
	u, r, err := userRepo(op, user, repo)
	if err != nil {
		return domain.Issue{}, err
	}
	if number <= 0 {
		return domain.Issue{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: issue number must be positive, got %d", domain.ErrInvalidConfig, number),
		}
	}
	req, err := s.c.endpoint(op, false, "issues", "show", u, r, strconv.Itoa(number))
	if err != nil {
		return domain.Issue{}, err
	}
	return fetch(ctx, s.c, op, mapper.KindIssue, req, mapper.DecodeIssue)
}
