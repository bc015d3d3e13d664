package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dmeister/py-github/internal/domain"
)

// Finder locates a config file by searching upward from a directory.
type Finder struct {
	Names []string // checked in order in each directory
}

func NewFinder() *Finder {
	return &Finder{Names: []string{".ghxml.yaml", ".ghxml.yml", ".ghxml.toml"}}
}

// Find returns the path of the nearest config file at or above startDir.
func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path means its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, name := range f.Names {
			p := filepath.Join(cur, name)
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				return p, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
