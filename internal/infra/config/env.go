package config

import (
	"os"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
)

const (
	EnvLogin   = "GITHUB_LOGIN"
	EnvToken   = "GITHUB_TOKEN"
	EnvBaseURL = "GHXML_BASE_URL"
)

// ApplyEnv overlays credentials and the base URL from the environment.
// A nil getenv means os.Getenv.
func ApplyEnv(cfg domain.Config, getenv func(string) string) domain.Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvLogin)); v != "" {
		cfg.API.Login = v
	}
	if v := strings.TrimSpace(getenv(EnvToken)); v != "" {
		cfg.API.Token = v
	}
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		cfg.API.BaseURL = strings.TrimRight(v, "/")
	}
	return cfg
}
