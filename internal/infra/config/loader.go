package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmeister/py-github/internal/domain"
)

// Load reads a config file and applies it over domain.DefaultConfig.
// The format follows the extension: .yaml/.yml or .toml.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &dto)
	case ".toml":
		err = toml.Unmarshal(b, &dto)
	default:
		err = fmt.Errorf("%w: unsupported config format %q", domain.ErrInvalidConfig, ext)
	}
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// LoadOrDefault loads path when it is set, otherwise looks for a config file
// upward from startDir. Finding nothing is not an error.
func LoadOrDefault(path, startDir string) (domain.Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	found, err := NewFinder().Find(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}
