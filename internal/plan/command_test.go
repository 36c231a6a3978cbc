package plan_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsemenov/repomove/internal/plan"
	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	gitEntryNameConstant         = ".git"
	directoryPermissionsConstant = 0o755
)

func createPlanRepository(testFramework *testing.T, rootDirectory string, repositoryName string) string {
	testFramework.Helper()

	repositoryPath := filepath.Join(rootDirectory, repositoryName)
	require.NoError(testFramework, os.MkdirAll(filepath.Join(repositoryPath, gitEntryNameConstant), directoryPermissionsConstant))
	return repositoryPath
}

func TestPlanCommandExecutesStepsSequentially(testFramework *testing.T) {
	firstSourceRoot := testFramework.TempDir()
	secondSourceRoot := testFramework.TempDir()
	firstDestinationRoot := testFramework.TempDir()
	secondDestinationRoot := testFramework.TempDir()
	movedRepositoryPath := createPlanRepository(testFramework, firstSourceRoot, "moved")
	copiedRepositoryPath := createPlanRepository(testFramework, secondSourceRoot, "copied")

	planFilePath := writePlanFile(testFramework, fmt.Sprintf(`relocations:
  - source: %s
    destination: %s
  - source: %s
    destination: %s
    copy: true
`, firstSourceRoot, firstDestinationRoot, secondSourceRoot, secondDestinationRoot))

	reportBuffer := &bytes.Buffer{}
	commandBuilder := &plan.CommandBuilder{Reporter: shared.NewWriterReporter(reportBuffer)}
	planCommand, buildError := commandBuilder.Build()
	require.NoError(testFramework, buildError)
	planCommand.SetContext(context.Background())
	planCommand.SetArgs([]string{planFilePath})

	require.NoError(testFramework, planCommand.Execute())

	_, movedSourceStatError := os.Stat(movedRepositoryPath)
	require.ErrorIs(testFramework, movedSourceStatError, os.ErrNotExist)
	_, movedDestinationStatError := os.Stat(filepath.Join(firstDestinationRoot, "moved"))
	require.NoError(testFramework, movedDestinationStatError)

	_, copiedSourceStatError := os.Stat(copiedRepositoryPath)
	require.NoError(testFramework, copiedSourceStatError)
	_, copiedDestinationStatError := os.Stat(filepath.Join(secondDestinationRoot, "copied"))
	require.NoError(testFramework, copiedDestinationStatError)
}

func TestPlanCommandRequiresPlanFileArgument(testFramework *testing.T) {
	commandBuilder := &plan.CommandBuilder{}
	planCommand, buildError := commandBuilder.Build()
	require.NoError(testFramework, buildError)
	planCommand.SetOut(&bytes.Buffer{})
	planCommand.SetErr(&bytes.Buffer{})
	planCommand.SetContext(context.Background())
	planCommand.SetArgs([]string{})

	executionError := planCommand.Execute()
	require.Error(testFramework, executionError)
	require.Contains(testFramework, executionError.Error(), "plan file path is required")
}

func TestPlanCommandRejectsInvalidPlanFiles(testFramework *testing.T) {
	planFilePath := writePlanFile(testFramework, "relocations: []\n")

	commandBuilder := &plan.CommandBuilder{}
	planCommand, buildError := commandBuilder.Build()
	require.NoError(testFramework, buildError)
	planCommand.SetContext(context.Background())
	planCommand.SetArgs([]string{planFilePath})

	executionError := planCommand.Execute()
	require.ErrorIs(testFramework, executionError, plan.ErrPlanEmpty)
}
