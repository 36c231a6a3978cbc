package shared

import "io/fs"

// IgnoreList is the ordered sequence of literal entry names excluded from a
// repository copy. A nil list represents an absent ignore file and excludes
// nothing; an empty, non-nil list represents a present but empty ignore file.
type IgnoreList []string

// Excludes reports whether the provided entry name appears in the list.
func (ignoreList IgnoreList) Excludes(entryName string) bool {
	for _, excludedName := range ignoreList {
		if excludedName == entryName {
			return true
		}
	}
	return false
}

// RepositoryInspection captures the outcome of classifying one directory.
type RepositoryInspection struct {
	IsGitRepository bool
	IgnoreEntries   IgnoreList
}

// FileSystem exposes the filesystem operations required by relocation services.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, permissions fs.FileMode) error
	RemoveAll(path string) error
	EvalSymlinks(path string) (string, error)
	CopyFile(sourcePath string, destinationPath string) error
}

// IgnoreEntryLoader reads ignore files into literal exclusion entries.
type IgnoreEntryLoader interface {
	LoadEntries(ignoreFilePath string) (IgnoreList, error)
}

// RepositoryInspector classifies directories prior to relocation.
type RepositoryInspector interface {
	Inspect(directoryPath string) (RepositoryInspection, error)
}

// TreeCopier copies directory trees while honoring an ignore list.
type TreeCopier interface {
	CopyTree(sourceDirectory string, destinationDirectory string, ignoreEntries IgnoreList) error
}
