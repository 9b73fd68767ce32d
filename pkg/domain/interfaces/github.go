package interfaces

import (
	"context"

	"github.com/m-mizutani/psindex/pkg/domain/model"
)

// RepositoryClient defines read operations on a remote repository
type RepositoryClient interface {
	// ListDirectory returns the entries of dir ("" for the repository root)
	ListDirectory(ctx context.Context, repo *model.Repository, dir string) ([]*model.RemoteEntry, error)

	// GetFileContent returns the decoded bytes of the file at path
	GetFileContent(ctx context.Context, repo *model.Repository, path string) ([]byte, error)

	// RawURL returns a location from which the raw bytes of path can be fetched
	RawURL(repo *model.Repository, path string) string
}
