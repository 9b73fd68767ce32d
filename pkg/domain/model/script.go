package model

import (
	"path"
	"strings"
)

// ScriptEntry is the metadata of one discovered script rendered into the index page
type ScriptEntry struct {
	Name        string // File name without extension
	Path        string // Path in the repository
	Description string // Text extracted from the leading comment
	RawURL      string // Location of the raw script bytes
}

// ScriptFile is a script fetched from the repository whose description is not extracted yet
type ScriptFile struct {
	Name    string
	Path    string
	RawURL  string
	Content []byte
}

// ScriptName derives the display name of a script from its repository path.
// Only the last extension is removed, so "a.b.ps1" becomes "a.b".
func ScriptName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// RegenerateResult summarizes one index regeneration run
type RegenerateResult struct {
	Path    string // Document path written (empty on dry run)
	Scripts int    // Number of sections rendered
	Skipped int    // Number of directories or files skipped due to errors
}
