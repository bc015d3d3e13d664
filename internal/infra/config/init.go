package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmeister/py-github/internal/domain"
)

//go:embed templates/*
var templatesFS embed.FS

// Init writes a starter config file into dir and returns its path.
// format is "yaml" or "toml". An existing file is kept unless force is set.
// The file may hold a token, so it is written 0600 and added to .gitignore.
func Init(dir, format string, force bool) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "yaml"
	}
	if format != "yaml" && format != "toml" {
		return "", &domain.OpError{
			Op:   "config.init",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: config format %q (want yaml or toml)", domain.ErrInvalidConfig, format),
		}
	}

	name := ".ghxml." + format
	dst := filepath.Join(filepath.Clean(dir), name)

	if !force {
		if _, err := os.Stat(dst); err == nil {
			return dst, &domain.OpError{
				Op:   "config.init",
				Kind: domain.KindInvalidConfig,
				Path: dst,
				Err:  fmt.Errorf("%w: file exists (use --force to overwrite)", domain.ErrInvalidConfig),
			}
		}
	}

	b, err := templatesFS.ReadFile("templates/ghxml." + format)
	if err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o600); err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := ensureGitignore(filepath.Dir(dst), name); err != nil {
		return dst, &domain.OpError{Op: "config.init", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return dst, nil
}

func ensureGitignore(root string, entries ...string) error {
	const header = "# ghxml"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(out.String()), 0o644)
}
