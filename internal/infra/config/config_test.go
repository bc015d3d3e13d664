package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmeister/py-github/internal/domain"
)

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "ghxml.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Login != "dustin" || cfg.API.Token != "blahblah" {
		t.Fatalf("unexpected credentials: %+v", cfg.API)
	}
	if cfg.API.BaseURL != domain.DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.API.BaseURL)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.UserAgent != "ghxml-test" {
		t.Fatalf("unexpected user agent %q", cfg.HTTP.UserAgent)
	}
	if cfg.HTTP.MaxBodyBytes != domain.DefaultConfig().HTTP.MaxBodyBytes {
		t.Fatalf("expected default body limit, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected lowercased level, got %q", cfg.Log.Level)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Output.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "ghxml.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://ghe.example.com/api/v2/xml" {
		t.Fatalf("expected trimmed base url, got %q", cfg.API.BaseURL)
	}
	if cfg.HTTP.MaxBodyBytes != 1024 {
		t.Fatalf("expected 1024, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.API.Authenticated() {
		t.Fatalf("expected no credentials")
	}
}

func TestLoadPartialAppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "partial.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.Log.Path != "/tmp/ghxml.log" {
		t.Fatalf("expected log path, got %q", cfg.Log.Path)
	}
	if cfg.Log.Level != def.Log.Level || cfg.Output.Format != def.Output.Format || cfg.HTTP.Timeout != def.HTTP.Timeout {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad_timeout.yaml": "http.timeout",
		"bad_format.toml":  "output.format",
		"half_auth.yaml":   "login and token",
		"broken.yaml":      "",
		"config.ini":       "unsupported config format",
	}
	for name, want := range cases {
		path := filepath.Join("testdata", name)
		_, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected invalid config, got %v", name, err)
		}
		if !strings.Contains(err.Error(), path) {
			t.Fatalf("%s: expected path in error, got %v", name, err)
		}
		if want != "" && !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: expected %q in error, got %v", name, want, err)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.API.BaseURL = "github.com/api"
	if err := Validate(cfg); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogin:   "dustin",
		EnvToken:   " secret ",
		EnvBaseURL: "https://ghe.local/api/v2/xml/",
	}
	cfg := ApplyEnv(domain.DefaultConfig(), func(k string) string { return env[k] })

	if cfg.API.Login != "dustin" || cfg.API.Token != "secret" {
		t.Fatalf("unexpected credentials: %+v", cfg.API)
	}
	if cfg.API.BaseURL != "https://ghe.local/api/v2/xml" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}

	same := ApplyEnv(cfg, func(string) string { return "" })
	if same != cfg {
		t.Fatalf("empty env must not change config")
	}
}

func TestFinderWalksUpward(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "project")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := filepath.Join(root, ".ghxml.toml")
	if err := os.WriteFile(want, []byte("[output]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFinder().Find(nested)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	cfg, path, err := LoadOrDefault("", nested)
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}
	if path != want || cfg.Output.Format != "json" {
		t.Fatalf("unexpected result %s %+v", path, cfg.Output)
	}
}

func TestFinderPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".ghxml.yaml", ".ghxml.toml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	got, err := NewFinder().Find(dir)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if filepath.Base(got) != ".ghxml.yaml" {
		t.Fatalf("expected yaml to win, got %s", got)
	}
}

func TestFinderNotFound(t *testing.T) {
	f := &Finder{Names: []string{".ghxml-test-does-not-exist.yaml"}}
	_, err := f.Find(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.Find(""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config for empty dir, got %v", err)
	}
}

func TestLoadOrDefaultExplicitPath(t *testing.T) {
	path := filepath.Join("testdata", "ghxml.yaml")
	cfg, used, err := LoadOrDefault(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if used != path || cfg.API.Login != "dustin" {
		t.Fatalf("unexpected result %s %+v", used, cfg.API)
	}
}
