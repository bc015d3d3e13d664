// Package filefetcher serves API documents from a directory of XML files,
// one file per resource path. It backs the offline mode of the CLI.
//
// A URL such as http://github.com/api/v2/xml/user/show/dustin?login=a&token=b
// resolves to <dir>/user/show/dustin.xml. The query string is ignored.
package filefetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/ports"
)

type Fetcher struct {
	dir     string
	baseURL string
}

type Option func(*Fetcher)

// WithBaseURL sets the prefix stripped from URLs before lookup.
func WithBaseURL(base string) Option {
	return func(f *Fetcher) { f.baseURL = strings.TrimRight(base, "/") }
}

func New(dir string, opts ...Option) *Fetcher {
	f := &Fetcher{dir: dir, baseURL: domain.DefaultBaseURL}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Fetcher = (*Fetcher)(nil)

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.OpError{Op: "filefetcher.fetch", Kind: domain.KindFetch, Path: withoutQuery(rawURL), Err: err}
	}

	p, err := f.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(p)
	if err != nil {
		kind := domain.KindFetch
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
		return nil, &domain.OpError{Op: "filefetcher.fetch", Kind: kind, Path: p, Err: err}
	}
	return file, nil
}

// Resolve maps a URL to the file that would serve it.
func (f *Fetcher) Resolve(rawURL string) (string, error) {
	rel := rawURL
	if f.baseURL != "" && strings.HasPrefix(rawURL, f.baseURL) {
		rel = strings.TrimPrefix(rawURL, f.baseURL)
	} else if u, err := url.Parse(rawURL); err == nil && u.IsAbs() {
		rel = u.EscapedPath()
	}
	if i := strings.IndexByte(rel, '?'); i >= 0 {
		rel = rel[:i]
	}

	unescaped, err := url.PathUnescape(rel)
	if err != nil {
		return "", &domain.OpError{Op: "filefetcher.resolve", Kind: domain.KindInvalidConfig, Path: withoutQuery(rawURL), Err: err}
	}
	clean := strings.TrimPrefix(path.Clean("/"+unescaped), "/")
	if clean == "" || clean == "." || !fs.ValidPath(clean) {
		return "", &domain.OpError{
			Op:   "filefetcher.resolve",
			Kind: domain.KindInvalidConfig,
			Path: withoutQuery(rawURL),
			Err:  fmt.Errorf("%w: no resource path in url", domain.ErrInvalidConfig),
		}
	}
	return filepath.Join(f.dir, filepath.FromSlash(clean)+".xml"), nil
}

func withoutQuery(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
