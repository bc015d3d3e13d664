package mapper

import "github.com/dmeister/py-github/internal/domain"

// PlanSchema reads the private <plan> block of user/show.
var PlanSchema = Schema[domain.Plan]{
	Element: "plan",
	Fields: []Field[domain.Plan]{
		Str("name", func(p *domain.Plan, v string) { p.Name = v }),
		Int("collaborators", func(p *domain.Plan, v int) { p.Collaborators = v }),
		Int("space", func(p *domain.Plan, v int) { p.Space = v }),
		Int("private-repos", func(p *domain.Plan, v int) { p.PrivateRepos = v }),
	},
}

// userCommon lists the fields user/show and user/search agree on.
func userCommon() []Field[domain.User] {
	return []Field[domain.User]{
		Str("name", func(u *domain.User, v string) { u.Name = v }),
		Str("login", func(u *domain.User, v string) { u.Login = v }),
		Str("email", func(u *domain.User, v string) { u.Email = v }),
		Str("location", func(u *domain.User, v string) { u.Location = v }),
		Str("language", func(u *domain.User, v string) { u.Language = v }),
		Str("blog", func(u *domain.User, v string) { u.Blog = v }),
		OptStr("company", func(u *domain.User, v *string) { u.Company = v }),
		Str("type", func(u *domain.User, v string) { u.Type = v }),
	}
}

// UserSearchSchema reads <users><user>... from user/search. Here "id" is an
// opaque search document id such as "user-1779".
var UserSearchSchema = Schema[domain.User]{
	Element: "user",
	List:    "users",
	Fields: append(userCommon(),
		Str("id", func(u *domain.User, v string) { u.SearchID = v }),
		Str("fullname", func(u *domain.User, v string) { u.Fullname = v }),
		Str("username", func(u *domain.User, v string) { u.Username = v }),
		Int("actions", func(u *domain.User, v int) { u.Actions = v }),
		Int("repos", func(u *domain.User, v int) { u.Repos = v }),
		Int("followers", func(u *domain.User, v int) { u.Followers = v }),
		Float("score", func(u *domain.User, v float64) { u.Score = v }),
		Time("created", func(u *domain.User, v domain.Timestamp) { u.Created = v }),
		Time("pushed", func(u *domain.User, v domain.Timestamp) { u.Pushed = v }),
	),
}

// UserSchema reads <user> from user/show, including the private fields that
// only appear on authenticated requests.
var UserSchema = Schema[domain.User]{
	Element: "user",
	Fields: append(userCommon(),
		Int("id", func(u *domain.User, v int) { u.ID = v }),
		Int("following-count", func(u *domain.User, v int) { u.FollowingCount = v }),
		Int("followers-count", func(u *domain.User, v int) { u.FollowersCount = v }),
		Int("public-gist-count", func(u *domain.User, v int) { u.PublicGistCount = v }),
		Int("public-repo-count", func(u *domain.User, v int) { u.PublicRepoCount = v }),
		Time("created-at", func(u *domain.User, v domain.Timestamp) { u.CreatedAt = v }),
		One("plan", PlanSchema, func(u *domain.User, p domain.Plan) { u.Plan = &p }),
		Int("disk-usage", func(u *domain.User, v int) { u.DiskUsage = v }),
		Int("collaborators", func(u *domain.User, v int) { u.Collaborators = v }),
		Int("owned-private-repo-count", func(u *domain.User, v int) { u.OwnedPrivateRepoCount = v }),
		Int("total-private-repo-count", func(u *domain.User, v int) { u.TotalPrivateRepoCount = v }),
		Int("private-gist-count", func(u *domain.User, v int) { u.PrivateGistCount = v }),
	),
}

// KeySchema reads <public-keys><public-key>... from user/keys.
var KeySchema = Schema[domain.Key]{
	Element: "public-key",
	List:    "public-keys",
	Fields: []Field[domain.Key]{
		Int("id", func(k *domain.Key, v int) { k.ID = v }),
		Str("title", func(k *domain.Key, v string) { k.Title = v }),
		Str("key", func(k *domain.Key, v string) { k.Key = v }),
	},
}

// RepositorySchema reads <repository>, alone from repos/show or inside
// <repositories> from the list endpoints.
var RepositorySchema = Schema[domain.Repository]{
	Element: "repository",
	List:    "repositories",
	Fields: []Field[domain.Repository]{
		Str("name", func(r *domain.Repository, v string) { r.Name = v }),
		Str("description", func(r *domain.Repository, v string) { r.Description = v }),
		Str("owner", func(r *domain.Repository, v string) { r.Owner = v }),
		Str("url", func(r *domain.Repository, v string) { r.URL = v }),
		OptStr("homepage", func(r *domain.Repository, v *string) { r.Homepage = v }),
		Int("watchers", func(r *domain.Repository, v int) { r.Watchers = v }),
		Int("forks", func(r *domain.Repository, v int) { r.Forks = v }),
		Int("open-issues", func(r *domain.Repository, v int) { r.OpenIssues = v }),
		Bool("private", func(r *domain.Repository, v bool) { r.Private = v }),
		Bool("fork", func(r *domain.Repository, v bool) { r.Fork = v }),
	},
}

// PersonSchema reads the author and committer blocks of a commit.
var PersonSchema = Schema[domain.Person]{
	Fields: []Field[domain.Person]{
		Str("name", func(p *domain.Person, v string) { p.Name = v }),
		Str("email", func(p *domain.Person, v string) { p.Email = v }),
		Str("login", func(p *domain.Person, v string) { p.Login = v }),
	},
}

// CommitRefSchema reads one <parent> of a commit.
var CommitRefSchema = Schema[domain.CommitRef]{
	Element: "parent",
	Fields: []Field[domain.CommitRef]{
		Str("id", func(c *domain.CommitRef, v string) { c.ID = v }),
	},
}

// CommitSchema reads <commit> from commits/show and each entry of commits/list.
var CommitSchema = Schema[domain.Commit]{
	Element: "commit",
	List:    "commits",
	Fields: []Field[domain.Commit]{
		Str("id", func(c *domain.Commit, v string) { c.ID = v }),
		Str("tree", func(c *domain.Commit, v string) { c.Tree = v }),
		Str("message", func(c *domain.Commit, v string) { c.Message = v }),
		Str("url", func(c *domain.Commit, v string) { c.URL = v }),
		Time("committed-date", func(c *domain.Commit, v domain.Timestamp) { c.CommittedDate = v }),
		Time("authored-date", func(c *domain.Commit, v domain.Timestamp) { c.AuthoredDate = v }),
		Many("parents", CommitRefSchema, func(c *domain.Commit, v []domain.CommitRef) { c.Parents = v }),
		One("author", PersonSchema, func(c *domain.Commit, v domain.Person) { c.Author = v }),
		One("committer", PersonSchema, func(c *domain.Commit, v domain.Person) { c.Committer = v }),
	},
}

// IssueSchema reads <issue> from issues/show and each entry of issues/list.
var IssueSchema = Schema[domain.Issue]{
	Element: "issue",
	List:    "issues",
	Fields: []Field[domain.Issue]{
		Int("number", func(i *domain.Issue, v int) { i.Number = v }),
		Int("votes", func(i *domain.Issue, v int) { i.Votes = v }),
		Float("position", func(i *domain.Issue, v float64) { i.Position = v }),
		Str("user", func(i *domain.Issue, v string) { i.User = v }),
		Str("title", func(i *domain.Issue, v string) { i.Title = v }),
		Str("body", func(i *domain.Issue, v string) { i.Body = v }),
		Str("state", func(i *domain.Issue, v string) { i.State = v }),
		Time("created-at", func(i *domain.Issue, v domain.Timestamp) { i.CreatedAt = v }),
		Time("updated-at", func(i *domain.Issue, v domain.Timestamp) { i.UpdatedAt = v }),
		OptTime("closed-at", func(i *domain.Issue, v *domain.Timestamp) { i.ClosedAt = v }),
	},
}
