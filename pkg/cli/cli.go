package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/psindex/pkg/cli/config"
	"github.com/m-mizutani/psindex/pkg/domain/types"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type runConfig struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures Run
type Option func(*runConfig)

// WithStdout sets where the dry-run document is written. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *runConfig) {
		c.stdout = w
	}
}

// WithStderr sets where logs are written. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(c *runConfig) {
		c.stderr = w
	}
}

// Run runs the CLI application. Logs go to stderr so that stdout carries only
// the document in dry-run mode.
func Run(ctx context.Context, args []string, opts ...Option) error {
	cfg := &runConfig{stdout: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	loggerCfg := config.Logger{Output: cfg.stderr}
	var logger *slog.Logger

	app := &cli.Command{
		Name:           types.ServiceName,
		Usage:          "Regenerate the PowerShell script index page of a GitHub repository",
		Version:        types.Version,
		Flags:          loggerCfg.Flags(),
		DefaultCommand: "update",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdUpdate(cfg.stdout),
			cmdServe(cfg.stdout),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
