package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/cli/config"
	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/usecase"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdUpdate(stdout io.Writer) *cli.Command {
	var (
		githubCfg config.GitHub
		indexCfg  config.Index
	)

	flags := append(githubCfg.Flags(), indexCfg.Flags()...)

	return &cli.Command{
		Name:    "update",
		Aliases: []string{"u"},
		Usage:   "Regenerate the index document once (default command)",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			indexUC, _, err := newIndexUseCase(&githubCfg, &indexCfg, stdout)
			if err != nil {
				return err
			}

			logger.Debug("Configuration loaded",
				slog.Any("github", githubCfg),
				slog.Any("index", indexCfg),
			)

			result, err := indexUC.Regenerate(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to regenerate index")
			}

			logger.Info("Update completed",
				slog.String("path", result.Path),
				slog.Int("script_count", result.Scripts),
				slog.Int("skipped", result.Skipped),
			)
			return nil
		},
	}
}

// newIndexUseCase wires the repository client and the index use case. A dry
// run writes the document to stdout.
func newIndexUseCase(githubCfg *config.GitHub, indexCfg *config.Index, stdout io.Writer) (interfaces.IndexUseCase, *model.Repository, error) {
	repo, err := githubCfg.Repo()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "invalid repository configuration")
	}

	client, err := githubCfg.NewClient()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create GitHub client")
	}

	return usecase.NewIndex(client, repo, indexCfg.Options(stdout)...), repo, nil
}
