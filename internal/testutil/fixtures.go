// Package testutil provides shared test helpers: canned API documents and
// stub fetchers that check the URL a client asked for.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmeister/py-github/internal/ports"
)

// FixtureDir returns the absolute path of the shared testdata directory.
func FixtureDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

// FixturePath returns the absolute path of a canned document.
func FixturePath(name string) string {
	return filepath.Join(FixtureDir(), name)
}

// ReadFixture returns the bytes of a canned document.
func ReadFixture(t testing.TB, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(FixturePath(name))
	require.NoError(t, err, "read fixture %s", name)
	return b
}

// StubFetcher serves one canned document and records every URL it was asked for.
type StubFetcher struct {
	t       testing.TB
	wantURL string
	fixture string

	// Err, when set, is returned instead of the document.
	Err error

	mu   sync.Mutex
	urls []string
}

var _ ports.Fetcher = (*StubFetcher)(nil)

// ExpectFetch returns a fetcher that fails the test unless it is asked for
// exactly wantURL, and then serves the named fixture.
func ExpectFetch(t testing.TB, wantURL, fixture string) *StubFetcher {
	return &StubFetcher{t: t, wantURL: wantURL, fixture: fixture}
}

func (s *StubFetcher) Fetch(_ context.Context, url string) (io.ReadCloser, error) {
	s.t.Helper()

	s.mu.Lock()
	s.urls = append(s.urls, url)
	s.mu.Unlock()

	assert.Equal(s.t, s.wantURL, url, "fetched URL")
	if s.Err != nil {
		return nil, s.Err
	}
	return io.NopCloser(bytes.NewReader(ReadFixture(s.t, s.fixture))), nil
}

// URLs returns the URLs fetched so far.
func (s *StubFetcher) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.urls...)
}

// FetchFunc returns a fetcher that serves body for any URL.
func FetchFunc(body string) ports.Fetcher {
	return ports.FetcherFunc(func(context.Context, string) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader([]byte(body))), nil
	})
}
