package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/domain/types"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
)

// DefaultIndexPath is the document regenerated when no path is configured
const DefaultIndexPath = "index.html"

type indexConfig struct {
	path      string
	extension string
	extractor interfaces.DescriptionExtractor
	dryRun    io.Writer
}

// IndexOption is a functional option for the index use case
type IndexOption func(*indexConfig)

// WithIndexPath sets the document to rewrite
func WithIndexPath(path string) IndexOption {
	return func(c *indexConfig) {
		c.path = path
	}
}

// WithExtension sets the file extension of scripts to list
func WithExtension(ext string) IndexOption {
	return func(c *indexConfig) {
		c.extension = ext
	}
}

// WithExtractor replaces the PowerShell description extractor
func WithExtractor(x interfaces.DescriptionExtractor) IndexOption {
	return func(c *indexConfig) {
		c.extractor = x
	}
}

// WithDryRun writes the updated document to w instead of the index file
func WithDryRun(w io.Writer) IndexOption {
	return func(c *indexConfig) {
		c.dryRun = w
	}
}

type indexUseCase struct {
	repo      *model.Repository
	path      string
	walker    *Walker
	extractor interfaces.DescriptionExtractor
	builder   *FragmentBuilder
	updater   *DocumentUpdater
	dryRun    io.Writer
}

// NewIndex creates a new instance of IndexUseCase
func NewIndex(client interfaces.RepositoryClient, repo *model.Repository, opts ...IndexOption) interfaces.IndexUseCase {
	cfg := &indexConfig{
		path:      DefaultIndexPath,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.extractor == nil {
		cfg.extractor = NewPowerShellExtractor("")
	}

	return &indexUseCase{
		repo:      repo,
		path:      cfg.path,
		walker:    NewWalker(client, cfg.extension),
		extractor: cfg.extractor,
		builder:   NewFragmentBuilder(),
		updater:   NewDocumentUpdater(),
		dryRun:    cfg.dryRun,
	}
}

// Regenerate walks the repository and rewrites the listing sections of the index document
func (uc *indexUseCase) Regenerate(ctx context.Context) (*model.RegenerateResult, error) {
	logger := logging.From(ctx)

	logger.Info("Regenerating script index",
		"repository", uc.repo.FullName(),
		"branch", uc.repo.Branch,
		"path", uc.path,
	)

	// Read the document before touching the network so a bad path fails fast
	doc, err := os.ReadFile(uc.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read index document",
			goerr.V("path", uc.path),
			goerr.T(types.ErrTagIO),
		)
	}

	walked := uc.walker.Walk(ctx, uc.repo)

	fragments := make([]string, 0, len(walked.Files))
	for _, file := range walked.Files {
		entry := &model.ScriptEntry{
			Name:        file.Name,
			Path:        file.Path,
			Description: uc.extractor.Extract(string(file.Content)),
			RawURL:      file.RawURL,
		}

		fragment, err := uc.builder.Build(entry)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	updated, err := uc.updater.Update(doc, fragments)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update index document", goerr.V("path", uc.path))
	}

	result := &model.RegenerateResult{
		Scripts: len(fragments),
		Skipped: walked.Skipped,
	}

	if uc.dryRun != nil {
		if _, err := uc.dryRun.Write(updated); err != nil {
			return nil, goerr.Wrap(err, "failed to write dry-run output", goerr.T(types.ErrTagIO))
		}
		logger.Info("Dry run completed", "script_count", result.Scripts, "skipped", result.Skipped)
		return result, nil
	}

	if err := writeFileAtomic(uc.path, updated); err != nil {
		return nil, err
	}
	result.Path = uc.path

	logger.Info("Index regenerated",
		"path", uc.path,
		"script_count", result.Scripts,
		"skipped", result.Skipped,
	)

	return result, nil
}

// writeFileAtomic replaces path with data via a temporary file in the same
// directory, so a failed write leaves the original document untouched.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file",
			goerr.V("path", path),
			goerr.T(types.ErrTagIO),
		)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error, msg string) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(cause, msg, goerr.V("path", path), goerr.T(types.ErrTagIO))
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err, "failed to write temporary file")
	}
	if err := tmp.Chmod(mode); err != nil {
		return cleanup(err, "failed to set file mode")
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err, "failed to sync temporary file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", path), goerr.T(types.ErrTagIO))
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace index document", goerr.V("path", path), goerr.T(types.ErrTagIO))
	}

	return nil
}
