package config

import (
	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	githubinfra "github.com/m-mizutani/psindex/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// DefaultRepository is the repository indexed when none is configured
const DefaultRepository = "thekingsmakers/IntuneUsefullScript"

// GitHub holds GitHub configuration
type GitHub struct {
	Repository string
	Branch     string
	Token      string `masq:"secret"`
	APIURL     string
	RawBaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository to scan for scripts (owner/name)",
			Value:       DefaultRepository,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("PSINDEX_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch to read scripts from",
			Value:       model.DefaultBranch,
			Destination: &c.Branch,
			Sources:     cli.EnvVars("PSINDEX_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token; requests are unauthenticated when empty",
			Destination: &c.Token,
			Sources:     cli.EnvVars("PSINDEX_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint",
			Value:       githubinfra.DefaultAPIURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("PSINDEX_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "raw-base-url",
			Usage:       "Host serving raw file contents, used in generated commands",
			Value:       githubinfra.DefaultRawBaseURL,
			Destination: &c.RawBaseURL,
			Sources:     cli.EnvVars("PSINDEX_RAW_BASE_URL"),
		},
	}
}

// Repo parses the configured repository identifier
func (c *GitHub) Repo() (*model.Repository, error) {
	return model.ParseRepository(c.Repository, c.Branch)
}

// NewClient creates a repository client from the configuration
func (c *GitHub) NewClient() (interfaces.RepositoryClient, error) {
	return githubinfra.NewClient(
		githubinfra.WithToken(c.Token),
		githubinfra.WithAPIURL(c.APIURL),
		githubinfra.WithRawBaseURL(c.RawBaseURL),
	)
}
