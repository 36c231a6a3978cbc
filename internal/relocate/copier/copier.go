package copier

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	fileSystemMissingMessageConstant        = "file system not configured"
	destinationCreateErrorTemplateConstant  = "unable to create destination directory %s: %w"
	sourceListErrorTemplateConstant         = "unable to list source directory %s: %w"
	fileCopyErrorTemplateConstant           = "unable to copy %s to %s: %w"
	destinationDirectoryPermissionsConstant = 0o755
)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// CopierDependencies enumerates collaborators required by TreeCopier.
type CopierDependencies struct {
	FileSystem shared.FileSystem
}

// TreeCopier recreates directory trees at a destination while skipping
// entries named in an ignore list.
type TreeCopier struct {
	fileSystem shared.FileSystem
}

// NewTreeCopier constructs a TreeCopier from the provided dependencies.
func NewTreeCopier(dependencies CopierDependencies) (*TreeCopier, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &TreeCopier{fileSystem: dependencies.FileSystem}, nil
}

// CopyTree mirrors sourceDirectory beneath destinationDirectory. Children
// whose name appears in ignoreEntries are skipped; a nil list excludes
// nothing. The list captured at the top of a relocation is threaded unchanged
// through every recursion level; nested ignore files are never consulted.
// Destination directories are created only when missing, so re-runs over an
// already-populated destination succeed and overwrite existing files.
func (treeCopier *TreeCopier) CopyTree(sourceDirectory string, destinationDirectory string, ignoreEntries shared.IgnoreList) error {
	if _, statError := treeCopier.fileSystem.Stat(destinationDirectory); statError != nil {
		if mkdirError := treeCopier.fileSystem.MkdirAll(destinationDirectory, destinationDirectoryPermissionsConstant); mkdirError != nil {
			return fmt.Errorf(destinationCreateErrorTemplateConstant, destinationDirectory, mkdirError)
		}
	}

	sourceEntries, listError := treeCopier.fileSystem.ReadDir(sourceDirectory)
	if listError != nil {
		return fmt.Errorf(sourceListErrorTemplateConstant, sourceDirectory, listError)
	}

	for _, sourceEntry := range sourceEntries {
		if ignoreEntries.Excludes(sourceEntry.Name()) {
			continue
		}

		sourcePath := filepath.Join(sourceDirectory, sourceEntry.Name())
		destinationPath := filepath.Join(destinationDirectory, sourceEntry.Name())

		if sourceEntry.IsDir() {
			if copyError := treeCopier.CopyTree(sourcePath, destinationPath, ignoreEntries); copyError != nil {
				return copyError
			}
			continue
		}

		if copyError := treeCopier.fileSystem.CopyFile(sourcePath, destinationPath); copyError != nil {
			return fmt.Errorf(fileCopyErrorTemplateConstant, sourcePath, destinationPath, copyError)
		}
	}

	return nil
}
