package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/dmeister/py-github/internal/domain"
)

type Config struct {
	// Total timeout for a single fetch, including reading the body.
	// A context deadline can still shorten it.
	Timeout time.Duration

	// Transport / dial timeouts.
	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConnsPerHost int

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 4,
		UserAgent:           "ghxml",
	}
}

// FromDomain overlays the user-facing HTTP settings on the transport defaults.
func FromDomain(hc domain.HTTPConfig) Config {
	cfg := DefaultConfig()
	if hc.Timeout > 0 {
		cfg.Timeout = hc.Timeout
	}
	if hc.UserAgent != "" {
		cfg.UserAgent = hc.UserAgent
	}
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}
	if cfg.UserAgent != "" {
		rt = userAgent{next: rt, ua: cfg.UserAgent}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}

type userAgent struct {
	next http.RoundTripper
	ua   string
}

func (u userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", u.ua)
	return u.next.RoundTrip(r)
}
