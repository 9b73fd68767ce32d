package cli

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/cli/config"
	controller "github.com/m-mizutani/psindex/pkg/controller/http"
	"github.com/m-mizutani/psindex/pkg/usecase"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe(stdout io.Writer) *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		indexCfg  config.Index
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, indexCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server that regenerates the index on push webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			logger.Info("Starting psindex server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("server", serverCfg),
				slog.Any("github", githubCfg),
			)

			indexUC, repo, err := newIndexUseCase(&githubCfg, &indexCfg, stdout)
			if err != nil {
				return err
			}
			webhookUC := usecase.NewWebhook(repo, indexUC)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
				controller.WithRepository(repo),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
