package config

import (
	"io"

	"github.com/m-mizutani/psindex/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Index holds index document configuration
type Index struct {
	Path                string
	Extension           string
	FallbackDescription string
	DryRun              bool
}

// Flags returns CLI flags for index configuration
func (c *Index) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "index-path",
			Usage:       "HTML document to regenerate",
			Value:       usecase.DefaultIndexPath,
			Destination: &c.Path,
			Sources:     cli.EnvVars("PSINDEX_INDEX_PATH"),
		},
		&cli.StringFlag{
			Name:        "extension",
			Usage:       "File extension of listed scripts",
			Value:       usecase.DefaultExtension,
			Destination: &c.Extension,
			Sources:     cli.EnvVars("PSINDEX_EXTENSION"),
		},
		&cli.StringFlag{
			Name:        "fallback-description",
			Usage:       "Description used for scripts without comments",
			Value:       usecase.DefaultFallbackDescription,
			Destination: &c.FallbackDescription,
			Sources:     cli.EnvVars("PSINDEX_FALLBACK_DESCRIPTION"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Print the regenerated document instead of writing it",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("PSINDEX_DRY_RUN"),
		},
	}
}

// Options returns index use case options. dryRunOut receives the document when DryRun is set.
func (c *Index) Options(dryRunOut io.Writer) []usecase.IndexOption {
	opts := []usecase.IndexOption{
		usecase.WithIndexPath(c.Path),
		usecase.WithExtension(c.Extension),
		usecase.WithExtractor(usecase.NewPowerShellExtractor(c.FallbackDescription)),
	}
	if c.DryRun {
		opts = append(opts, usecase.WithDryRun(dryRunOut))
	}
	return opts
}
