package usecase_test

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/psindex/pkg/domain/model"
)

// MockRepositoryClient serves an in-memory file tree
type MockRepositoryClient struct {
	files       map[string]string // path -> content
	failList    map[string]bool   // directories whose listing fails
	failFetch   map[string]bool   // files whose fetch fails
	mu          sync.Mutex
	fetchCalls  []string
	listingDirs []string
}

func newMockRepositoryClient(files map[string]string) *MockRepositoryClient {
	return &MockRepositoryClient{
		files:     files,
		failList:  map[string]bool{},
		failFetch: map[string]bool{},
	}
}

func (m *MockRepositoryClient) ListDirectory(ctx context.Context, repo *model.Repository, dir string) ([]*model.RemoteEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listingDirs = append(m.listingDirs, dir)

	if m.failList[dir] {
		return nil, errors.New("listing failed")
	}

	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := map[string]*model.RemoteEntry{}
	for p := range m.files {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		if child, _, isDir := strings.Cut(rest, "/"); isDir {
			seen[child] = &model.RemoteEntry{Name: child, Path: prefix + child, Type: model.RemoteEntryDir}
		} else {
			seen[rest] = &model.RemoteEntry{Name: rest, Path: p, Type: model.RemoteEntryFile}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]*model.RemoteEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, seen[name])
	}
	return entries, nil
}

func (m *MockRepositoryClient) GetFileContent(ctx context.Context, repo *model.Repository, filePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls = append(m.fetchCalls, filePath)

	if m.failFetch[filePath] {
		return nil, errors.New("fetch failed")
	}
	content, ok := m.files[filePath]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(content), nil
}

func (m *MockRepositoryClient) RawURL(repo *model.Repository, filePath string) string {
	return "https://raw.example.com/" + path.Join(repo.Owner, repo.Name, repo.Branch, filePath)
}

func testRepo() *model.Repository {
	return &model.Repository{Owner: "octo", Name: "scripts", Branch: "main"}
}
