package inspection

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dsemenov/repomove/internal/relocate/gitignore"
	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	gitMetadataEntryNameConstant       = ".git"
	defaultIgnoreFileNameConstant      = ".gitignore"
	fileSystemMissingMessageConstant   = "file system not configured"
	directoryListErrorTemplateConstant = "unable to list directory %s: %w"
)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// InspectorDependencies enumerates collaborators required by DirectoryInspector.
type InspectorDependencies struct {
	FileSystem     shared.FileSystem
	IgnoreLoader   shared.IgnoreEntryLoader
	IgnoreFileName string
}

// DirectoryInspector classifies a directory as a git repository by the
// presence of a .git entry among its immediate children.
type DirectoryInspector struct {
	fileSystem     shared.FileSystem
	ignoreLoader   shared.IgnoreEntryLoader
	ignoreFileName string
}

// NewDirectoryInspector constructs a DirectoryInspector from the provided dependencies.
func NewDirectoryInspector(dependencies InspectorDependencies) (*DirectoryInspector, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	ignoreLoader := dependencies.IgnoreLoader
	if ignoreLoader == nil {
		ignoreLoader = gitignore.NewLoader()
	}

	ignoreFileName := strings.TrimSpace(dependencies.IgnoreFileName)
	if len(ignoreFileName) == 0 {
		ignoreFileName = defaultIgnoreFileNameConstant
	}

	inspector := &DirectoryInspector{
		fileSystem:     dependencies.FileSystem,
		ignoreLoader:   ignoreLoader,
		ignoreFileName: ignoreFileName,
	}

	return inspector, nil
}

// Inspect enumerates the immediate children of the directory. A child named
// .git of any type marks the directory as a git repository; a child matching
// the configured ignore file name is loaded into the inspection's ignore
// entries. Enumeration order is filesystem-defined and never relied upon.
func (inspector *DirectoryInspector) Inspect(directoryPath string) (shared.RepositoryInspection, error) {
	directoryEntries, listError := inspector.fileSystem.ReadDir(directoryPath)
	if listError != nil {
		return shared.RepositoryInspection{}, fmt.Errorf(directoryListErrorTemplateConstant, directoryPath, listError)
	}

	inspection := shared.RepositoryInspection{}
	for _, directoryEntry := range directoryEntries {
		switch directoryEntry.Name() {
		case gitMetadataEntryNameConstant:
			inspection.IsGitRepository = true
		case inspector.ignoreFileName:
			ignoreEntries, loadError := inspector.ignoreLoader.LoadEntries(filepath.Join(directoryPath, directoryEntry.Name()))
			if loadError != nil {
				return shared.RepositoryInspection{}, loadError
			}
			inspection.IgnoreEntries = ignoreEntries
		}
	}

	return inspection, nil
}
