package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/types"
)

// DefaultBranch is used when no branch is configured
const DefaultBranch = "main"

// Repository identifies a GitHub repository and the branch to read from
type Repository struct {
	Owner  string
	Name   string
	Branch string
}

// ParseRepository parses an "owner/name" identifier
func ParseRepository(id, branch string) (*Repository, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(id), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, goerr.New("invalid repository identifier, expected owner/name",
			goerr.V("repository", id),
			goerr.T(types.ErrTagConfig),
		)
	}

	if branch == "" {
		branch = DefaultBranch
	}

	return &Repository{
		Owner:  owner,
		Name:   name,
		Branch: branch,
	}, nil
}

// FullName returns "owner/name"
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
