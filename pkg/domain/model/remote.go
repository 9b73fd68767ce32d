package model

// RemoteEntryType is the type of an entry in a repository directory listing
type RemoteEntryType string

const (
	RemoteEntryFile      RemoteEntryType = "file"
	RemoteEntryDir       RemoteEntryType = "dir"
	RemoteEntrySymlink   RemoteEntryType = "symlink"
	RemoteEntrySubmodule RemoteEntryType = "submodule"
)

// RemoteEntry is one validated entry of a repository directory listing
type RemoteEntry struct {
	Name string
	Path string
	Type RemoteEntryType
}
