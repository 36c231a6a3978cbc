package dependencies

import (
	"io"

	"github.com/dsemenov/repomove/internal/relocate/copier"
	"github.com/dsemenov/repomove/internal/relocate/filesystem"
	"github.com/dsemenov/repomove/internal/relocate/gitignore"
	"github.com/dsemenov/repomove/internal/relocate/inspection"
	"github.com/dsemenov/repomove/internal/relocate/shared"
	"github.com/dsemenov/repomove/internal/utils"
)

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveIgnoreLoader returns the provided loader or the default gitignore loader.
func ResolveIgnoreLoader(existing shared.IgnoreEntryLoader) shared.IgnoreEntryLoader {
	if existing != nil {
		return existing
	}
	return gitignore.NewLoader()
}

// ResolveRepositoryInspector returns the provided inspector or constructs a filesystem-backed default.
func ResolveRepositoryInspector(existing shared.RepositoryInspector, fileSystem shared.FileSystem, ignoreFileName string) (shared.RepositoryInspector, error) {
	if existing != nil {
		return existing, nil
	}
	return inspection.NewDirectoryInspector(inspection.InspectorDependencies{
		FileSystem:     ResolveFileSystem(fileSystem),
		IgnoreLoader:   ResolveIgnoreLoader(nil),
		IgnoreFileName: ignoreFileName,
	})
}

// ResolveTreeCopier returns the provided copier or constructs a filesystem-backed default.
func ResolveTreeCopier(existing shared.TreeCopier, fileSystem shared.FileSystem) (shared.TreeCopier, error) {
	if existing != nil {
		return existing, nil
	}
	return copier.NewTreeCopier(copier.CopierDependencies{FileSystem: ResolveFileSystem(fileSystem)})
}

// ResolveReporter returns the provided reporter or one that flushes the given writer after every message.
func ResolveReporter(existing shared.Reporter, outputWriter io.Writer) shared.Reporter {
	if existing != nil {
		return existing
	}
	return shared.NewWriterReporter(utils.NewFlushingWriter(outputWriter))
}
