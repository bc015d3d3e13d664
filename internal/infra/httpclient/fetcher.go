package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/ports"
)

const defaultMaxBodyBytes = 4 << 20 // 4MB

// StatusError reports a non-2xx answer from the API. URL has no query string.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Is lets a 404 match domain.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Code == http.StatusNotFound
}

// Fetcher retrieves API documents over HTTP.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

// Option allows configuring a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the deadline applied to each fetch.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) { f.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

// WithMaxBodyBytes caps the size of a document. Larger bodies are an error.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBodyBytes = n }
}

// NewFetcher builds a Fetcher with a default client and timeout.
func NewFetcher(opts ...Option) *Fetcher {
	cfg := DefaultConfig()
	f := &Fetcher{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetch performs a GET and returns the whole body once it has been read.
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := BuildRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fetchError(url, &StatusError{Code: resp.StatusCode, URL: withoutQuery(url)})
	}

	body, truncated, err := readBounded(resp.Body, f.maxBodyBytes)
	if err != nil {
		return nil, fetchError(url, err)
	}
	if truncated {
		return nil, fetchError(url, fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes))
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func fetchError(url string, err error) error {
	kind := domain.KindFetch
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		kind = domain.KindNotFound
	}
	return &domain.OpError{
		Op:   "httpclient.fetch",
		Kind: kind,
		Path: withoutQuery(url),
		Err:  errors.Join(domain.ErrFetch, scrubURLError(err)),
	}
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	if maxBytes <= 0 {
		b, err := io.ReadAll(r)
		return b, false, err
	}
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
