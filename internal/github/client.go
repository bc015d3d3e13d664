// Package github is a read-only client for the GitHub v2 XML API.
//
// A Client builds resource URLs, asks its Fetcher for the document and maps
// the result into domain values. All network access goes through the
// Fetcher, so tests and the offline mode swap it for canned documents.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/infra/httpclient"
	"github.com/dmeister/py-github/internal/infra/logger"
	"github.com/dmeister/py-github/internal/mapper"
	"github.com/dmeister/py-github/internal/ports"
)

const tokenMask = "xxxxx"

type Client struct {
	baseURL string
	login   string
	token   string
	fetcher ports.Fetcher
	log     *slog.Logger

	Users   *UsersService
	Repos   *ReposService
	Commits *CommitsService
	Issues  *IssuesService
}

type Option func(*Client)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f ports.Fetcher) Option {
	return func(c *Client) { c.fetcher = f }
}

// WithAuth sets the login/token pair appended to every request.
func WithAuth(login, token string) Option {
	return func(c *Client) {
		c.login = login
		c.token = token
	}
}

func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(opts ...Option) *Client {
	c := &Client{baseURL: domain.DefaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = domain.DefaultBaseURL
	}
	if c.fetcher == nil {
		c.fetcher = httpclient.NewFetcher()
	}

	c.Users = &UsersService{c: c}
	c.Repos = &ReposService{c: c}
	c.Commits = &CommitsService{c: c}
	c.Issues = &IssuesService{c: c}
	return c
}

// Authenticated reports whether requests carry credentials.
func (c *Client) Authenticated() bool {
	return c.login != "" && c.token != ""
}

// BaseURL returns the API root requests are built against.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.L()
}

// request is a resolved endpoint: the URL handed to the fetcher and the same
// URL with the token masked, for logs and errors.
type request struct {
	url     string
	display string
}

// endpoint joins escaped path segments onto the base URL and appends the
// credentials when the client has them. requireAuth turns their absence
// into an error.
func (c *Client) endpoint(op string, requireAuth bool, segments ...string) (request, error) {
	if requireAuth && !c.Authenticated() {
		return request{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrAuthRequired,
		}
	}

	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}
	plain := b.String()

	if !c.Authenticated() {
		return request{url: plain, display: plain}, nil
	}
	q := url.Values{}
	q.Set("login", c.login)
	q.Set("token", c.token)
	masked := url.Values{}
	masked.Set("login", c.login)
	masked.Set("token", tokenMask)
	return request{
		url:     plain + "?" + q.Encode(),
		display: plain + "?" + masked.Encode(),
	}, nil
}

// segment escapes one required path segment.
func segment(op, name, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: %s is required", domain.ErrInvalidConfig, name),
		}
	}
	return url.PathEscape(v), nil
}

// filePath escapes each element of a slash separated path, keeping the slashes.
func filePath(op, p string) (string, error) {
	var parts []string
	for _, el := range strings.Split(p, "/") {
		if el == "" {
			continue
		}
		parts = append(parts, url.PathEscape(el))
	}
	if len(parts) == 0 {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: path is required", domain.ErrInvalidConfig),
		}
	}
	return strings.Join(parts, "/"), nil
}

func fetch[T any](ctx context.Context, c *Client, op string, kind mapper.Kind, req request, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	log := c.logger().With(
		"request_id", xid.New().String(),
		"op", op,
		"kind", string(kind),
		"url", req.display,
	)

	start := time.Now()
	rc, err := c.fetcher.Fetch(ctx, req.url)
	if err != nil {
		err = c.mask(err)
		log.Warn("github.fetch.failed", "error", err.Error(), "duration_ms", time.Since(start).Milliseconds())
		return zero, fetchError(op, req.display, err)
	}
	defer rc.Close()

	v, err := decode(rc)
	dur := time.Since(start).Milliseconds()
	if err != nil {
		err = c.mask(err)
		log.Warn("github.decode.failed", "error", err.Error(), "error_kind", string(domain.KindOf(err)), "duration_ms", dur)
		return zero, &domain.OpError{Op: op, Kind: kindOr(err, domain.KindParse), Path: req.display, Err: err}
	}

	log.Debug("github.fetch.done", "duration_ms", dur)
	return v, nil
}

// maskedError hides the token in the message of an error it wraps.
// errors.Is and errors.As still see the original chain.
type maskedError struct {
	err    error
	secret []string
}

func (e *maskedError) Error() string {
	msg := e.err.Error()
	for _, s := range e.secret {
		msg = strings.ReplaceAll(msg, s, tokenMask)
	}
	return msg
}

func (e *maskedError) Unwrap() error { return e.err }

// mask wraps err when its message carries the token, raw or query-escaped.
func (c *Client) mask(err error) error {
	if err == nil || c.token == "" {
		return err
	}
	secret := []string{c.token}
	if esc := url.QueryEscape(c.token); esc != c.token {
		secret = append(secret, esc)
	}
	if esc := url.PathEscape(c.token); esc != c.token && esc != secret[len(secret)-1] {
		secret = append(secret, esc)
	}
	msg := err.Error()
	for _, s := range secret {
		if strings.Contains(msg, s) {
			return &maskedError{err: err, secret: secret}
		}
	}
	return err
}

// fetchError keeps the fetcher's error intact and adds the operation.
func fetchError(op, display string, err error) error {
	if domain.KindOf(err) == "" && !errors.Is(err, domain.ErrFetch) {
		err = errors.Join(domain.ErrFetch, err)
	}
	return &domain.OpError{Op: op, Kind: kindOr(err, domain.KindFetch), Path: display, Err: err}
}

func kindOr(err error, fallback domain.ErrorKind) domain.ErrorKind {
	if k := domain.KindOf(err); k != "" {
		return k
	}
	return fallback
}
