package mapper

import (
	"fmt"
	"io"

	"github.com/dmeister/py-github/internal/domain"
	"github.com/dmeister/py-github/internal/infra/xmltree"
)

// Kind names a resource kind: a document shape plus the value it maps to.
type Kind string

const (
	KindUser         Kind = "user"
	KindUserSearch   Kind = "user-search"
	KindKeys         Kind = "keys"
	KindRepository   Kind = "repository"
	KindRepositories Kind = "repositories"
	KindBranches     Kind = "branches"
	KindCommit       Kind = "commit"
	KindCommits      Kind = "commits"
	KindIssue        Kind = "issue"
	KindIssues       Kind = "issues"
)

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{
		KindUser, KindUserSearch, KindKeys,
		KindRepository, KindRepositories, KindBranches,
		KindCommit, KindCommits,
		KindIssue, KindIssues,
	}
}

// Decode parses r and maps it according to kind. The dynamic type of the
// result is a domain value, a slice of domain values, or domain.BranchMap:
//
//	KindUser          domain.User
//	KindUserSearch    []domain.User
//	KindKeys          []domain.Key
//	KindRepository    domain.Repository
//	KindRepositories  []domain.Repository
//	KindBranches      domain.BranchMap
//	KindCommit        domain.Commit
//	KindCommits       []domain.Commit
//	KindIssue         domain.Issue
//	KindIssues        []domain.Issue
func Decode(r io.Reader, kind Kind) (any, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}

	var v any
	switch kind {
	case KindUser:
		v, err = Map(root, UserSchema)
	case KindUserSearch:
		v, err = MapList(root, UserSearchSchema)
	case KindKeys:
		v, err = MapList(root, KeySchema)
	case KindRepository:
		v, err = Map(root, RepositorySchema)
	case KindRepositories:
		v, err = MapList(root, RepositorySchema)
	case KindBranches:
		v, err = MapBranches(root)
	case KindCommit:
		v, err = Map(root, CommitSchema)
	case KindCommits:
		v, err = MapList(root, CommitSchema)
	case KindIssue:
		v, err = Map(root, IssueSchema)
	case KindIssues:
		v, err = MapList(root, IssueSchema)
	default:
		return nil, &domain.OpError{
			Op:   "mapper.decode",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown resource kind %q", kind),
		}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeOne[T any](r io.Reader, s Schema[T]) (T, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return Map(root, s)
}

func decodeList[T any](r io.Reader, s Schema[T]) ([]T, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return MapList(root, s)
}

func DecodeUser(r io.Reader) (domain.User, error) { return decodeOne(r, UserSchema) }

func DecodeUsers(r io.Reader) ([]domain.User, error) { return decodeList(r, UserSearchSchema) }

func DecodeKeys(r io.Reader) ([]domain.Key, error) { return decodeList(r, KeySchema) }

func DecodeRepository(r io.Reader) (domain.Repository, error) {
	return decodeOne(r, RepositorySchema)
}

func DecodeRepositories(r io.Reader) ([]domain.Repository, error) {
	return decodeList(r, RepositorySchema)
}

func DecodeBranches(r io.Reader) (domain.BranchMap, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return MapBranches(root)
}

func DecodeCommit(r io.Reader) (domain.Commit, error) { return decodeOne(r, CommitSchema) }

func DecodeCommits(r io.Reader) ([]domain.Commit, error) { return decodeList(r, CommitSchema) }

func DecodeIssue(r io.Reader) (domain.Issue, error) { return decodeOne(r, IssueSchema) }

func DecodeIssues(r io.Reader) ([]domain.Issue, error) { return decodeList(r, IssueSchema) }
