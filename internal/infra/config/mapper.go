package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dmeister/py-github/internal/domain"
)

// Formats accepted by output.format.
var Formats = []string{"pretty", "json"}

func MapConfig(path string, fc fileConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(fc.API.BaseURL); v != "" {
		cfg.API.BaseURL = strings.TrimRight(v, "/")
	}
	cfg.API.Login = strings.TrimSpace(fc.API.Login)
	cfg.API.Token = strings.TrimSpace(fc.API.Token)

	if v := strings.TrimSpace(fc.HTTP.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, invalidField(path, "http.timeout", fmt.Sprintf("invalid duration %q", v))
		}
		cfg.HTTP.Timeout = d
	}
	if fc.HTTP.MaxBodyBytes != nil {
		if *fc.HTTP.MaxBodyBytes <= 0 {
			return cfg, invalidField(path, "http.max_body_bytes", "must be positive")
		}
		cfg.HTTP.MaxBodyBytes = *fc.HTTP.MaxBodyBytes
	}
	if v := strings.TrimSpace(fc.HTTP.UserAgent); v != "" {
		cfg.HTTP.UserAgent = v
	}

	if v := strings.TrimSpace(fc.Log.Level); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	cfg.Log.Path = strings.TrimSpace(fc.Log.Path)

	if v := strings.TrimSpace(fc.Output.Format); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}

	if err := Validate(cfg); err != nil {
		return cfg, withPath(err, path)
	}
	return cfg, nil
}

// Validate checks a fully assembled config, including flag and env overrides.
func Validate(cfg domain.Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalidField("", "api.base_url", fmt.Sprintf("not an http(s) url: %q", cfg.API.BaseURL))
	}
	if (cfg.API.Login == "") != (cfg.API.Token == "") {
		return invalidField("", "api", "login and token must be set together")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalidField("", "log.level", fmt.Sprintf("unknown level %q", cfg.Log.Level))
	}
	if !slices.Contains(Formats, cfg.Output.Format) {
		return invalidField("", "output.format", fmt.Sprintf("want one of %s, got %q", strings.Join(Formats, ", "), cfg.Output.Format))
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: %s: %s", domain.ErrInvalidConfig, field, msg),
	}
}

func withPath(err error, path string) error {
	if oe, ok := err.(*domain.OpError); ok && oe.Path == "" {
		cp := *oe
		cp.Path = path
		return &cp
	}
	return err
}
