package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
)

// BuildRequest builds the GET request for one API document.
func BuildRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: empty url", domain.ErrInvalidConfig),
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: withoutQuery(rawURL),
			Err:  scrubURLError(err),
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: withoutQuery(rawURL),
			Err:  fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidConfig, u.Scheme),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: withoutQuery(rawURL),
			Err:  scrubURLError(err),
		}
	}
	req.Header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.1")
	return req, nil
}

// withoutQuery drops the query string, which carries the credentials, so a
// URL can go into an error message.
func withoutQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// scrubURLError rewrites the URL a *url.Error would print.
func scrubURLError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	return &url.Error{Op: ue.Op, URL: withoutQuery(ue.URL), Err: ue.Err}
}
