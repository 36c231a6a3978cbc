package relocate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dsemenov/repomove/internal/relocate/copier"
	"github.com/dsemenov/repomove/internal/relocate/inspection"
	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	sourceRootRequiredMessageConstant       = "source root must be provided"
	destinationRootRequiredMessageConstant  = "destination root must be provided"
	fileSystemMissingMessageConstant        = "file system not configured"
	sourceNotFoundMessageConstant           = "source directory not found"
	rootNotDirectoryMessageTemplateConstant = "%s is not a directory or does not exist\n"
	notGitDirectoryMessageTemplateConstant  = "%s is not a git directory\n"
	entryVanishedMessageTemplateConstant    = "%s vanished before it could be inspected\n"
	relocatedMessageTemplateConstant        = "RELOCATED: %s -> %s\n"
	copiedMessageTemplateConstant           = "COPIED: %s -> %s\n"
	rootListErrorTemplateConstant           = "unable to list source root %s: %w"
	sourceStatErrorTemplateConstant         = "unable to inspect source directory %s: %w"
	sourceNotFoundErrorTemplateConstant     = "%s: %w"
	copyFailureErrorTemplateConstant        = "error copying directory: %w"
	removeFailureErrorTemplateConstant      = "error removing source directory: %w"
	childFailureErrorTemplateConstant       = "%s: %w"
	inspectionFailedLogMessageConstant      = "repository inspection failed"
	copyFailedLogMessageConstant            = "repository copy failed"
	removeFailedLogMessageConstant          = "source removal failed after successful copy"
	entryVanishedLogMessageConstant         = "entry vanished between enumeration and resolution"
	relocationFailedLogMessageConstant      = "repository relocation failed"
	logFieldEntryPathConstant               = "entry_path"
	logFieldSourcePathConstant              = "source_path"
	logFieldDestinationPathConstant         = "destination_path"
)

// ErrSourceRootRequired indicates the source root option was empty.
var ErrSourceRootRequired = errors.New(sourceRootRequiredMessageConstant)

// ErrDestinationRootRequired indicates the destination root option was empty.
var ErrDestinationRootRequired = errors.New(destinationRootRequiredMessageConstant)

// ErrFileSystemNotConfigured indicates the filesystem dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrSourceNotFound indicates a relocation source directory does not exist.
var ErrSourceNotFound = errors.New(sourceNotFoundMessageConstant)

// SkipReason enumerates why a scanned entry was left in place.
type SkipReason string

// Skip reasons recorded by Run.
const (
	SkipReasonNotGitRepository SkipReason = "not_git_repository"
	SkipReasonVanished         SkipReason = "vanished"
)

// ServiceDependencies enumerates collaborators required by the service.
type ServiceDependencies struct {
	Logger     *zap.Logger
	FileSystem shared.FileSystem
	Inspector  shared.RepositoryInspector
	Copier     shared.TreeCopier
	Reporter   shared.Reporter
}

// Options configure one relocation scan.
type Options struct {
	SourceRoot      string
	DestinationRoot string
	CopyOnly        bool
}

// RepositoryRelocation captures one successfully relocated repository.
type RepositoryRelocation struct {
	RepositoryPath  string
	DestinationPath string
	SourceRemoved   bool
}

// SkippedEntry captures a scanned child that was deliberately left in place.
type SkippedEntry struct {
	Path   string
	Reason SkipReason
}

// RelocationFailure captures a child whose relocation failed.
type RelocationFailure struct {
	Path         string
	FailureError error
}

// Result captures the observable outcomes of one scan.
type Result struct {
	Relocations []RepositoryRelocation
	Skipped     []SkippedEntry
	Failures    []RelocationFailure
}

// Service scans a source root for git repositories and relocates each one
// under a destination root.
type Service struct {
	logger     *zap.Logger
	fileSystem shared.FileSystem
	inspector  shared.RepositoryInspector
	copier     shared.TreeCopier
	reporter   shared.Reporter
}

// NewService constructs a Service from the provided dependencies. The
// filesystem is required; missing inspector and copier collaborators are
// built on top of it, and a missing reporter defaults to standard output.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	repositoryInspector := dependencies.Inspector
	if repositoryInspector == nil {
		builtInspector, inspectorError := inspection.NewDirectoryInspector(inspection.InspectorDependencies{FileSystem: dependencies.FileSystem})
		if inspectorError != nil {
			return nil, inspectorError
		}
		repositoryInspector = builtInspector
	}

	treeCopier := dependencies.Copier
	if treeCopier == nil {
		builtCopier, copierError := copier.NewTreeCopier(copier.CopierDependencies{FileSystem: dependencies.FileSystem})
		if copierError != nil {
			return nil, copierError
		}
		treeCopier = builtCopier
	}

	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = shared.NewWriterReporter(nil)
	}

	service := &Service{
		logger:     logger,
		fileSystem: dependencies.FileSystem,
		inspector:  repositoryInspector,
		copier:     treeCopier,
		reporter:   reporter,
	}

	return service, nil
}

// Run scans the immediate children of the source root, classifies each one,
// and relocates every git repository under the destination root. A missing or
// non-directory source root is an informational no-op. Failing children are
// recorded and logged without stopping the remaining siblings; the aggregated
// error is returned once the scan completes.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	trimmedSourceRoot := strings.TrimSpace(options.SourceRoot)
	if len(trimmedSourceRoot) == 0 {
		return Result{}, ErrSourceRootRequired
	}

	trimmedDestinationRoot := strings.TrimSpace(options.DestinationRoot)
	if len(trimmedDestinationRoot) == 0 {
		return Result{}, ErrDestinationRootRequired
	}

	rootInfo, rootStatError := service.fileSystem.Stat(trimmedSourceRoot)
	if rootStatError != nil || !rootInfo.IsDir() {
		service.reporter.Printf(rootNotDirectoryMessageTemplateConstant, trimmedSourceRoot)
		return Result{}, nil
	}

	rootEntries, rootListError := service.fileSystem.ReadDir(trimmedSourceRoot)
	if rootListError != nil {
		return Result{}, fmt.Errorf(rootListErrorTemplateConstant, trimmedSourceRoot, rootListError)
	}

	result := Result{}
	var aggregatedError error

	for _, rootEntry := range rootEntries {
		if contextError := executionContext.Err(); contextError != nil {
			return result, multierr.Append(aggregatedError, contextError)
		}

		entryPath := filepath.Join(trimmedSourceRoot, rootEntry.Name())

		canonicalPath, resolveError := service.fileSystem.EvalSymlinks(entryPath)
		if resolveError != nil {
			// The entry can disappear between enumeration and resolution; that
			// race is a reportable skip, not a failure.
			service.reporter.Printf(entryVanishedMessageTemplateConstant, entryPath)
			service.logger.Warn(entryVanishedLogMessageConstant, zap.String(logFieldEntryPathConstant, entryPath), zap.Error(resolveError))
			result.Skipped = append(result.Skipped, SkippedEntry{Path: entryPath, Reason: SkipReasonVanished})
			continue
		}
		destinationName := filepath.Base(canonicalPath)

		inspectionResult, inspectionError := service.inspector.Inspect(entryPath)
		if inspectionError != nil {
			service.logger.Error(inspectionFailedLogMessageConstant, zap.String(logFieldEntryPathConstant, entryPath), zap.Error(inspectionError))
			result.Failures = append(result.Failures, RelocationFailure{Path: entryPath, FailureError: inspectionError})
			aggregatedError = multierr.Append(aggregatedError, fmt.Errorf(childFailureErrorTemplateConstant, entryPath, inspectionError))
			continue
		}

		if !inspectionResult.IsGitRepository {
			service.reporter.Printf(notGitDirectoryMessageTemplateConstant, entryPath)
			result.Skipped = append(result.Skipped, SkippedEntry{Path: entryPath, Reason: SkipReasonNotGitRepository})
			continue
		}

		destinationPath := filepath.Join(trimmedDestinationRoot, destinationName)
		relocation, relocationError := service.RelocateRepository(entryPath, destinationPath, inspectionResult.IgnoreEntries, options.CopyOnly)
		if relocationError != nil {
			service.logger.Error(relocationFailedLogMessageConstant, zap.String(logFieldEntryPathConstant, entryPath), zap.Error(relocationError))
			result.Failures = append(result.Failures, RelocationFailure{Path: entryPath, FailureError: relocationError})
			aggregatedError = multierr.Append(aggregatedError, fmt.Errorf(childFailureErrorTemplateConstant, entryPath, relocationError))
			continue
		}

		result.Relocations = append(result.Relocations, relocation)
		if relocation.SourceRemoved {
			service.reporter.Printf(relocatedMessageTemplateConstant, entryPath, destinationPath)
		} else {
			service.reporter.Printf(copiedMessageTemplateConstant, entryPath, destinationPath)
		}
	}

	return result, aggregatedError
}

// RelocateRepository copies one repository directory to the destination and,
// unless copyOnly is set, deletes the source afterwards. A missing source
// fails before any copying. A copy failure leaves the source untouched; a
// deletion failure after a successful copy leaves both trees populated and is
// reported without rollback.
func (service *Service) RelocateRepository(sourceDirectory string, destinationDirectory string, ignoreEntries shared.IgnoreList, copyOnly bool) (RepositoryRelocation, error) {
	if _, sourceStatError := service.fileSystem.Stat(sourceDirectory); sourceStatError != nil {
		if errors.Is(sourceStatError, fs.ErrNotExist) {
			return RepositoryRelocation{}, fmt.Errorf(sourceNotFoundErrorTemplateConstant, sourceDirectory, ErrSourceNotFound)
		}
		return RepositoryRelocation{}, fmt.Errorf(sourceStatErrorTemplateConstant, sourceDirectory, sourceStatError)
	}

	if copyError := service.copier.CopyTree(sourceDirectory, destinationDirectory, ignoreEntries); copyError != nil {
		service.logger.Error(copyFailedLogMessageConstant,
			zap.String(logFieldSourcePathConstant, sourceDirectory),
			zap.String(logFieldDestinationPathConstant, destinationDirectory),
			zap.Error(copyError),
		)
		return RepositoryRelocation{}, fmt.Errorf(copyFailureErrorTemplateConstant, copyError)
	}

	relocation := RepositoryRelocation{RepositoryPath: sourceDirectory, DestinationPath: destinationDirectory}
	if copyOnly {
		return relocation, nil
	}

	if removeError := service.fileSystem.RemoveAll(sourceDirectory); removeError != nil {
		service.logger.Error(removeFailedLogMessageConstant,
			zap.String(logFieldSourcePathConstant, sourceDirectory),
			zap.String(logFieldDestinationPathConstant, destinationDirectory),
			zap.Error(removeError),
		)
		return RepositoryRelocation{}, fmt.Errorf(removeFailureErrorTemplateConstant, removeError)
	}

	relocation.SourceRemoved = true
	return relocation, nil
}
