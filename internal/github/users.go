package github

import (
	"context"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/mapper"
)

type UsersService struct{ c *Client }

// Search finds users by name. The returned users carry the search fields
// (fullname, score, repos...) rather than the profile fields.
func (s *UsersService) Search(ctx context.Context, query string) ([]domain.User, error) {
	const op = "github.users.search"
	q, err := segment(op, "query", query)
	if err != nil {
		return nil, err
	}
	req, err := s.c.endpoint(op, false, "user", "search", q)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindUserSearch, req, mapper.DecodeUsers)
}

// Show returns a user profile. Authenticated requests for your own login
// also fill the private fields (plan, disk usage...).
func (s *UsersService) Show(ctx context.Context, user string) (domain.User, error) {
	const op = "github.users.show"
	u, err := segment(op, "user", user)
	if err != nil {
		return domain.User{}, err
	}
	req, err := s.c.endpoint(op, false, "user", "show", u)
	if err != nil {
		return domain.User{}, err
	}
	return fetch(ctx, s.c, op, mapper.KindUser, req, mapper.DecodeUser)
}

// Keys lists the public keys of the authenticated user.
func (s *UsersService) Keys(ctx context.Context) ([]domain.Key, error) {
	const op = "github.users.keys"
	req, err := s.c.endpoint(op, true, "user", "keys")
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.c, op, mapper.KindKeys, req, mapper.DecodeKeys)
}
