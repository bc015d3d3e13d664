// Package render prints API results for humans (pretty) or tools (json).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmeister/py-github/internal/domain"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

type Options struct {
	Format string // pretty (default) or json
	Select string // optional JSONPath applied before printing
	Theme  *Theme
}

// Write prints v. With Select set only the selected value is printed.
func Write(w io.Writer, v any, opts Options) error {
	if opts.Select != "" {
		s, err := Select(v, opts.Select)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}

	switch strings.ToLower(opts.Format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatPretty, "":
		theme := DefaultTheme()
		if opts.Theme != nil {
			theme = *opts.Theme
		}
		_, err := io.WriteString(w, Pretty(v, theme)+"\n")
		return err
	default:
		return &domain.OpError{
			Op:   "render.write",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, opts.Format),
		}
	}
}

type row struct {
	key   string
	value string
}

// Pretty renders domain values as titled key/value cards.
func Pretty(v any, th Theme) string {
	switch t := v.(type) {
	case domain.User:
		return card(th, t.String(), userRows(t))
	case []domain.User:
		return many(th, t, func(u domain.User) string { return card(th, u.String(), userRows(u)) })
	case domain.Key:
		return card(th, t.Title, keyRows(t))
	case []domain.Key:
		return many(th, t, func(k domain.Key) string { return card(th, k.Title, keyRows(k)) })
	case domain.Repository:
		return card(th, t.String(), repoRows(t))
	case []domain.Repository:
		return many(th, t, func(r domain.Repository) string { return card(th, r.String(), repoRows(r)) })
	case domain.Commit:
		return card(th, t.String(), commitRows(t))
	case []domain.Commit:
		return many(th, t, func(c domain.Commit) string { return card(th, c.String(), commitRows(c)) })
	case domain.Issue:
		return card(th, t.String(), issueRows(t))
	case []domain.Issue:
		return many(th, t, func(i domain.Issue) string { return card(th, i.String(), issueRows(i)) })
	case domain.BranchMap:
		rows := make([]row, 0, len(t))
		for _, name := range t.Names() {
			rows = append(rows, row{name, t[name]})
		}
		return card(th, fmt.Sprintf("%d branches", len(t)), rows)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

func many[T any](th Theme, items []T, one func(T) string) string {
	if len(items) == 0 {
		return th.Muted.Render("(none)")
	}
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, one(it))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func card(th Theme, title string, rows []row) string {
	width := 0
	for _, r := range rows {
		if len(r.key) > width {
			width = len(r.key)
		}
	}

	lines := []string{th.Title.Render(title)}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		key := th.Key.Width(width).Render(r.key)
		lines = append(lines, key+"  "+r.value)
	}
	return th.Card.Render(strings.Join(lines, "\n"))
}

func userRows(u domain.User) []row {
	rows := []row{
		{"login", u.Login},
		{"name", u.Name},
		{"fullname", u.Fullname},
		{"email", u.Email},
		{"location", u.Location},
		{"language", u.Language},
		{"blog", u.Blog},
		{"company", deref(u.Company)},
		{"created", firstNonEmpty(string(u.CreatedAt), string(u.Created))},
		{"pushed", string(u.Pushed)},
	}
	if u.ID != 0 {
		rows = append(rows,
			row{"id", strconv.Itoa(u.ID)},
			row{"followers", strconv.Itoa(u.FollowersCount)},
			row{"following", strconv.Itoa(u.FollowingCount)},
			row{"public repos", strconv.Itoa(u.PublicRepoCount)},
			row{"public gists", strconv.Itoa(u.PublicGistCount)},
		)
	} else {
		rows = append(rows,
			row{"id", u.SearchID},
			row{"followers", strconv.Itoa(u.Followers)},
			row{"repos", strconv.Itoa(u.Repos)},
			row{"score", strconv.FormatFloat(u.Score, 'f', -1, 64)},
		)
	}
	if u.Plan != nil {
		rows = append(rows,
			row{"plan", fmt.Sprintf("%s (%d private repos, %d collaborators, %d KB)",
				u.Plan.Name, u.Plan.PrivateRepos, u.Plan.Collaborators, u.Plan.Space)},
			row{"disk usage", strconv.Itoa(u.DiskUsage)},
			row{"private repos", fmt.Sprintf("%d/%d", u.OwnedPrivateRepoCount, u.TotalPrivateRepoCount)},
		)
	}
	return rows
}

func keyRows(k domain.Key) []row {
	key := k.Key
	if len(key) > 48 {
		key = key[:24] + "..." + key[len(key)-21:]
	}
	return []row{{"id", strconv.Itoa(k.ID)}, {"key", key}}
}

func repoRows(r domain.Repository) []row {
	return []row{
		{"description", r.Description},
		{"url", r.URL},
		{"homepage", deref(r.Homepage)},
		{"watchers", strconv.Itoa(r.Watchers)},
		{"forks", strconv.Itoa(r.Forks)},
		{"open issues", strconv.Itoa(r.OpenIssues)},
		{"flags", flags(r)},
	}
}

func flags(r domain.Repository) string {
	var fs []string
	if r.Private {
		fs = append(fs, "private")
	}
	if r.Fork {
		fs = append(fs, "fork")
	}
	return strings.Join(fs, ", ")
}

func commitRows(c domain.Commit) []row {
	parents := make([]string, 0, len(c.Parents))
	for _, p := range c.Parents {
		parents = append(parents, shortSHA(p.ID))
	}
	msg, _, _ := strings.Cut(c.Message, "\n")
	return []row{
		{"message", msg},
		{"author", c.Author.String()},
		{"committer", c.Committer.String()},
		{"date", string(c.CommittedDate)},
		{"tree", shortSHA(c.Tree)},
		{"parents", strings.Join(parents, " ")},
	}
}

func issueRows(i domain.Issue) []row {
	closed := ""
	if i.ClosedAt != nil {
		closed = string(*i.ClosedAt)
	}
	return []row{
		{"title", i.Title},
		{"state", i.State},
		{"user", i.User},
		{"votes", strconv.Itoa(i.Votes)},
		{"created", string(i.CreatedAt)},
		{"updated", string(i.UpdatedAt)},
		{"closed", closed},
		{"body", i.Body},
	}
}

func shortSHA(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
