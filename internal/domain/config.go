package domain

import "time"

// DefaultBaseURL is the root of the v2 XML API.
const DefaultBaseURL = "http://github.com/api/v2/xml"

// Config represents the ghxml configuration loaded from .ghxml.yaml or .ghxml.toml.
type Config struct {
	API    APIConfig
	HTTP   HTTPConfig
	Log    LogConfig
	Output OutputConfig
}

type APIConfig struct {
	BaseURL string
	Login   string
	Token   string
}

// Authenticated reports whether both halves of the credential pair are set.
func (c APIConfig) Authenticated() bool {
	return c.Login != "" && c.Token != ""
}

type HTTPConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

type LogConfig struct {
	Level string
	Path  string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if the config file is partially missing.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			MaxBodyBytes: 4 << 20,
			UserAgent:    "ghxml",
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: "pretty",
		},
	}
}
