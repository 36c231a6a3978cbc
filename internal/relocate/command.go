package relocate

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dsemenov/repomove/internal/relocate/dependencies"
	"github.com/dsemenov/repomove/internal/relocate/shared"
	flagutils "github.com/dsemenov/repomove/internal/utils/flags"
	pathutils "github.com/dsemenov/repomove/internal/utils/path"
)

const (
	commandUseConstant                   = "relocate <source> <destination>"
	commandShortDescriptionConstant      = "Relocate git repositories found under a source root"
	commandLongDescriptionConstant       = "relocate scans the immediate subdirectories of the source root, detects git repositories by their .git entry, and moves each one under the destination root while excluding entries named in the repository's .gitignore. Pass --copy to preserve the source repositories after copying."
	commandExampleConstant               = "repomove relocate ~/Development/archive ~/Backups/repositories --copy"
	insufficientArgumentsMessageConstant = "source and destination paths are required"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the relocate command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	FileSystem            shared.FileSystem
	Inspector             shared.RepositoryInspector
	Copier                shared.TreeCopier
	Reporter              shared.Reporter
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the relocate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.Run,
	}

	return command, nil
}

// Run executes a relocation scan using the command's positional arguments and
// inherited flags. It is exported so the root command can delegate the plain
// two-argument invocation form.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	sanitizedArguments := pathutils.NewPathSanitizer().Sanitize(arguments)
	if len(sanitizedArguments) < 2 {
		if command != nil {
			_ = command.Help()
		}
		return errors.New(insufficientArgumentsMessageConstant)
	}
	sourceRoot := sanitizedArguments[0]
	destinationRoot := sanitizedArguments[1]

	copyOnly := configuration.CopyOnly
	if copyFlagValue, copyFlagChanged := flagutils.ResolveCopyFlag(command); copyFlagChanged {
		copyOnly = copyFlagValue
	}

	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)

	repositoryInspector, inspectorError := dependencies.ResolveRepositoryInspector(builder.Inspector, fileSystem, configuration.IgnoreFileName)
	if inspectorError != nil {
		return inspectorError
	}

	treeCopier, copierError := dependencies.ResolveTreeCopier(builder.Copier, fileSystem)
	if copierError != nil {
		return copierError
	}

	reporter := builder.Reporter
	if reporter == nil {
		reporter = dependencies.ResolveReporter(nil, command.OutOrStdout())
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:     builder.resolveLogger(),
		FileSystem: fileSystem,
		Inspector:  repositoryInspector,
		Copier:     treeCopier,
		Reporter:   reporter,
	})
	if serviceError != nil {
		return serviceError
	}

	_, runError := service.Run(command.Context(), Options{
		SourceRoot:      sourceRoot,
		DestinationRoot: destinationRoot,
		CopyOnly:        copyOnly,
	})
	return runError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
