package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmeister/py-github/internal/domain"
)

func TestFetcherReturnsBody(t *testing.T) {
	var gotUA, gotAccept, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<user><login>dustin</login></user>`))
	}))
	defer srv.Close()

	f := NewFetcher()
	rc, err := f.Fetch(context.Background(), srv.URL+"/user/show/dustin?login=u&token=t")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(body) != `<user><login>dustin</login></user>` {
		t.Fatalf("unexpected body %q", body)
	}
	if gotUA != "ghxml" {
		t.Fatalf("expected default user agent, got %q", gotUA)
	}
	if !strings.Contains(gotAccept, "application/xml") {
		t.Fatalf("expected xml accept header, got %q", gotAccept)
	}
	if gotQuery != "login=u&token=t" {
		t.Fatalf("expected query to pass through, got %q", gotQuery)
	}
}

func TestFetcherCustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	cfg := FromDomain(domain.HTTPConfig{UserAgent: "tester/1.0"})
	f := NewFetcher(WithClient(New(cfg)))
	rc, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	rc.Close()

	if gotUA != "tester/1.0" {
		t.Fatalf("expected custom user agent, got %q", gotUA)
	}
}

func TestFetcherStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	f := NewFetcher()

	_, err := f.Fetch(context.Background(), srv.URL+"/missing")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if !errors.Is(err, domain.ErrNotFound) || !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("expected StatusError 404, got %v", err)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/broken")
	if err == nil {
		t.Fatalf("expected error for 500")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("500 must not be not-found")
	}
	if !domain.IsKind(err, domain.KindFetch) || !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected fetch kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "/broken") {
		t.Fatalf("expected url in error, got %q", err.Error())
	}
}

func TestFetcherRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 2048)))
	}))
	defer srv.Close()

	f := NewFetcher(WithMaxBodyBytes(1024))
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected size error")
	}
	if !domain.IsKind(err, domain.KindFetch) {
		t.Fatalf("expected fetch kind, got %v", err)
	}
}

func TestFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	f := NewFetcher(WithTimeout(20 * time.Millisecond))
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !domain.IsKind(err, domain.KindFetch) {
		t.Fatalf("expected fetch kind, got %v", err)
	}
}

func TestBuildRequestValidatesURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://github.com/x", "://bad"} {
		_, err := BuildRequest(context.Background(), raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("expected invalid config for %q, got %v", raw, err)
		}
	}

	req, err := BuildRequest(context.Background(), "http://github.com/api/v2/xml/user/show/dustin")
	if err != nil {
		t.Fatalf("BuildRequest error: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", req.Method)
	}
}

func TestReadBounded(t *testing.T) {
	b, truncated, err := readBounded(strings.NewReader("hello"), 3)
	if err != nil || !truncated || string(b) != "hel" {
		t.Fatalf("got %q %v %v", b, truncated, err)
	}
	b, truncated, err = readBounded(strings.NewReader("hi"), 3)
	if err != nil || truncated || string(b) != "hi" {
		t.Fatalf("got %q %v %v", b, truncated, err)
	}
	b, truncated, err = readBounded(strings.NewReader("unbounded"), 0)
	if err != nil || truncated || string(b) != "unbounded" {
		t.Fatalf("got %q %v %v", b, truncated, err)
	}
}

func TestFetcherErrorsOmitQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher()
	_, err := f.Fetch(context.Background(), srv.URL+"/user/keys?login=dustin&token=s3cret")
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.Contains(err.Error(), "s3cret") {
		t.Fatalf("token in error: %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.URL != srv.URL+"/user/keys" {
		t.Fatalf("unexpected status url %q", se.URL)
	}

	// Nothing listens on a closed server; the transport error must not echo the query.
	closed := httptest.NewServer(http.NotFoundHandler())
	addr := closed.URL
	closed.Close()
	_, err = f.Fetch(context.Background(), addr+"/user/keys?login=dustin&token=s3cret")
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if !domain.IsKind(err, domain.KindFetch) {
		t.Fatalf("expected fetch kind, got %v", err)
	}
	if strings.Contains(err.Error(), "s3cret") {
		t.Fatalf("token in transport error: %v", err)
	}
}
