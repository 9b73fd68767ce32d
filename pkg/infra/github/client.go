package github

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/domain/types"
)

const (
	DefaultAPIURL     = "https://api.github.com/"
	DefaultRawBaseURL = "https://raw.githubusercontent.com/"
)

type config struct {
	token      string
	apiURL     string
	rawBaseURL string
	httpClient *http.Client
}

// Option is a functional option for the GitHub client
type Option func(*config)

// WithToken authenticates requests with a bearer token. Requests are unauthenticated without it.
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithAPIURL overrides the REST API endpoint (e.g. for GitHub Enterprise or tests)
func WithAPIURL(apiURL string) Option {
	return func(c *config) {
		c.apiURL = apiURL
	}
}

// WithRawBaseURL overrides the host serving raw file contents
func WithRawBaseURL(rawBaseURL string) Option {
	return func(c *config) {
		c.rawBaseURL = rawBaseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

type client struct {
	githubClient *github.Client
	rawBaseURL   string
}

// NewClient creates a new GitHub client for reading repository contents
func NewClient(opts ...Option) (interfaces.RepositoryClient, error) {
	cfg := &config{
		apiURL:     DefaultAPIURL,
		rawBaseURL: DefaultRawBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)
	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.apiURL != DefaultAPIURL {
		apiURL := cfg.apiURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API URL",
				goerr.V("api_url", cfg.apiURL),
				goerr.T(types.ErrTagConfig),
			)
		}
		githubClient.BaseURL = baseURL
	}

	return &client{
		githubClient: githubClient,
		rawBaseURL:   strings.TrimSuffix(cfg.rawBaseURL, "/"),
	}, nil
}

// ListDirectory returns the entries of dir on the configured branch
func (c *client) ListDirectory(ctx context.Context, repo *model.Repository, dir string) ([]*model.RemoteEntry, error) {
	file, entries, _, err := c.githubClient.Repositories.GetContents(ctx, repo.Owner, repo.Name, dir, &github.RepositoryContentGetOptions{
		Ref: repo.Branch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory",
			goerr.V("repository", repo.FullName()),
			goerr.V("dir", dir),
			goerr.T(types.ErrTagNetwork),
		)
	}
	if file != nil {
		return nil, goerr.New("path is not a directory",
			goerr.V("repository", repo.FullName()),
			goerr.V("dir", dir),
			goerr.T(types.ErrTagDecode),
		)
	}

	result := make([]*model.RemoteEntry, 0, len(entries))
	for _, entry := range entries {
		remote, err := toRemoteEntry(entry)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid directory listing",
				goerr.V("repository", repo.FullName()),
				goerr.V("dir", dir),
			)
		}
		result = append(result, remote)
	}

	return result, nil
}

// GetFileContent fetches a file through the contents API and decodes it
func (c *client) GetFileContent(ctx context.Context, repo *model.Repository, filePath string) ([]byte, error) {
	file, _, _, err := c.githubClient.Repositories.GetContents(ctx, repo.Owner, repo.Name, filePath, &github.RepositoryContentGetOptions{
		Ref: repo.Branch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get file content",
			goerr.V("repository", repo.FullName()),
			goerr.V("path", filePath),
			goerr.T(types.ErrTagNetwork),
		)
	}
	if file == nil {
		return nil, goerr.New("path is not a file",
			goerr.V("repository", repo.FullName()),
			goerr.V("path", filePath),
			goerr.T(types.ErrTagDecode),
		)
	}

	// Files over 1 MB are returned without content. They are listed with an
	// empty body so the description falls back.
	if file.GetEncoding() == "none" {
		return []byte{}, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content",
			goerr.V("repository", repo.FullName()),
			goerr.V("path", filePath),
			goerr.V("encoding", file.GetEncoding()),
			goerr.T(types.ErrTagDecode),
		)
	}

	return []byte(content), nil
}

// RawURL returns the raw.githubusercontent.com style URL of filePath on the configured branch
func (c *client) RawURL(repo *model.Repository, filePath string) string {
	segments := strings.Split(filePath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.Join([]string{
		c.rawBaseURL,
		repo.Owner,
		repo.Name,
		repo.Branch,
		strings.Join(segments, "/"),
	}, "/")
}

// toRemoteEntry validates a listing record and converts it to the domain type
func toRemoteEntry(entry *github.RepositoryContent) (*model.RemoteEntry, error) {
	if entry == nil {
		return nil, goerr.New("nil entry in directory listing", goerr.T(types.ErrTagDecode))
	}
	if entry.GetPath() == "" || entry.GetType() == "" {
		return nil, goerr.New("directory entry lacks path or type",
			goerr.V("name", entry.GetName()),
			goerr.V("path", entry.GetPath()),
			goerr.V("type", entry.GetType()),
			goerr.T(types.ErrTagDecode),
		)
	}

	name := entry.GetName()
	if name == "" {
		name = path.Base(entry.GetPath())
	}

	return &model.RemoteEntry{
		Name: name,
		Path: entry.GetPath(),
		Type: model.RemoteEntryType(entry.GetType()),
	}, nil
}
