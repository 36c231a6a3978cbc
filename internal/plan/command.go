package plan

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dsemenov/repomove/internal/relocate"
	"github.com/dsemenov/repomove/internal/relocate/dependencies"
	"github.com/dsemenov/repomove/internal/relocate/shared"
	pathutils "github.com/dsemenov/repomove/internal/utils/path"
)

const (
	commandUseConstant              = "plan <file>"
	commandShortDescriptionConstant = "Execute a YAML plan of relocation steps"
	commandLongDescriptionConstant  = "plan reads a YAML file describing ordered source-to-destination relocations and executes each step sequentially. Steps that fail are recorded and the remaining steps still run; the aggregated error is reported once the plan completes."
	commandExampleConstant          = "repomove plan relocations.yaml"
	planFileRequiredMessageConstant = "plan file path is required"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the plan command.
type CommandBuilder struct {
	LoggerProvider                LoggerProvider
	FileSystem                    shared.FileSystem
	Reporter                      shared.Reporter
	RelocateConfigurationProvider func() relocate.CommandConfiguration
}

// Build constructs the plan command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	sanitizedArguments := pathutils.NewPathSanitizer().Sanitize(arguments)
	if len(sanitizedArguments) == 0 {
		if command != nil {
			_ = command.Help()
		}
		return errors.New(planFileRequiredMessageConstant)
	}

	configuration, loadError := LoadConfiguration(sanitizedArguments[0])
	if loadError != nil {
		return loadError
	}

	relocateConfiguration := builder.resolveRelocateConfiguration()

	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)

	repositoryInspector, inspectorError := dependencies.ResolveRepositoryInspector(nil, fileSystem, relocateConfiguration.IgnoreFileName)
	if inspectorError != nil {
		return inspectorError
	}

	treeCopier, copierError := dependencies.ResolveTreeCopier(nil, fileSystem)
	if copierError != nil {
		return copierError
	}

	reporter := builder.Reporter
	if reporter == nil {
		reporter = dependencies.ResolveReporter(nil, command.OutOrStdout())
	}

	service, serviceError := relocate.NewService(relocate.ServiceDependencies{
		Logger:     builder.resolveLogger(),
		FileSystem: fileSystem,
		Inspector:  repositoryInspector,
		Copier:     treeCopier,
		Reporter:   reporter,
	})
	if serviceError != nil {
		return serviceError
	}

	var aggregatedError error
	for _, relocationStep := range configuration.Relocations {
		_, stepError := service.Run(command.Context(), relocate.Options{
			SourceRoot:      relocationStep.Source,
			DestinationRoot: relocationStep.Destination,
			CopyOnly:        relocationStep.Copy,
		})
		aggregatedError = multierr.Append(aggregatedError, stepError)
	}

	return aggregatedError
}

func (builder *CommandBuilder) resolveRelocateConfiguration() relocate.CommandConfiguration {
	if builder.RelocateConfigurationProvider == nil {
		return relocate.DefaultCommandConfiguration()
	}
	return builder.RelocateConfigurationProvider().Sanitize()
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
