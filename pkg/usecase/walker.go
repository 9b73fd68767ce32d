package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
)

// DefaultExtension selects PowerShell scripts
const DefaultExtension = ".ps1"

// Walker enumerates scripts in a remote repository
type Walker struct {
	client    interfaces.RepositoryClient
	extension string
}

// NewWalker creates a Walker that collects files ending with extension
func NewWalker(client interfaces.RepositoryClient, extension string) *Walker {
	if extension == "" {
		extension = DefaultExtension
	}
	return &Walker{
		client:    client,
		extension: extension,
	}
}

// WalkResult holds the fetched scripts and the number of skipped units
type WalkResult struct {
	Files   []*model.ScriptFile
	Skipped int
}

// Walk lists the repository depth-first from its root and fetches every
// matching file. Failed listings are treated as empty directories and failed
// fetches skip the file; neither aborts the walk.
func (w *Walker) Walk(ctx context.Context, repo *model.Repository) *WalkResult {
	result := &WalkResult{}
	w.walkDir(ctx, repo, "", result)

	logging.From(ctx).Info("Walked repository",
		"repository", repo.FullName(),
		"branch", repo.Branch,
		"script_count", len(result.Files),
		"skipped", result.Skipped,
	)

	return result
}

func (w *Walker) walkDir(ctx context.Context, repo *model.Repository, dir string, result *WalkResult) {
	logger := logging.From(ctx)

	entries, err := w.client.ListDirectory(ctx, repo, dir)
	if err != nil {
		logger.Warn("Failed to list directory, skipping", "dir", dir, "error", err)
		result.Skipped++
		return
	}

	for _, entry := range entries {
		switch entry.Type {
		case model.RemoteEntryDir:
			w.walkDir(ctx, repo, entry.Path, result)

		case model.RemoteEntryFile:
			if !strings.HasSuffix(entry.Name, w.extension) {
				continue
			}

			content, err := w.client.GetFileContent(ctx, repo, entry.Path)
			if err != nil {
				logger.Warn("Failed to fetch script, skipping", "path", entry.Path, "error", err)
				result.Skipped++
				continue
			}

			logger.Debug("Fetched script", "path", entry.Path, "size_bytes", len(content))
			result.Files = append(result.Files, &model.ScriptFile{
				Name:    model.ScriptName(entry.Path),
				Path:    entry.Path,
				RawURL:  w.client.RawURL(repo, entry.Path),
				Content: content,
			})

		default:
			logger.Debug("Ignoring entry", "path", entry.Path, "type", entry.Type)
		}
	}
}
