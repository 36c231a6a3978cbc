package gitignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsemenov/repomove/internal/relocate/gitignore"
	"github.com/dsemenov/repomove/internal/relocate/shared"
)

const (
	ignoreFileNameConstant        = ".gitignore"
	ignoreFilePermissionsConstant = 0o644
)

func writeIgnoreFile(testFramework *testing.T, fileContent string) string {
	testFramework.Helper()

	ignoreFilePath := filepath.Join(testFramework.TempDir(), ignoreFileNameConstant)
	require.NoError(testFramework, os.WriteFile(ignoreFilePath, []byte(fileContent), ignoreFilePermissionsConstant))
	return ignoreFilePath
}

func TestLoadEntriesTransformsLines(testFramework *testing.T) {
	testScenarios := []struct {
		scenarioName    string
		fileContent     string
		expectedEntries shared.IgnoreList
	}{
		{
			scenarioName:    "stripsTrailingSlashes",
			fileContent:     "target/\nnode_modules/\n",
			expectedEntries: shared.IgnoreList{"target", "node_modules"},
		},
		{
			scenarioName:    "trimsSurroundingWhitespace",
			fileContent:     "  node_modules/ \n\tbuild\t\n",
			expectedEntries: shared.IgnoreList{"node_modules", "build"},
		},
		{
			scenarioName:    "removesEveryPathSeparator",
			fileContent:     "deep/nested/path\n",
			expectedEntries: shared.IgnoreList{"deepnestedpath"},
		},
		{
			scenarioName:    "keepsCommentAndBlankLinesAsOrdinaryEntries",
			fileContent:     "# comment\n\nbuild/\n",
			expectedEntries: shared.IgnoreList{"# comment", "", "build"},
		},
		{
			scenarioName:    "preservesDuplicatesAndOrder",
			fileContent:     "build/\nbuild\n",
			expectedEntries: shared.IgnoreList{"build", "build"},
		},
	}

	for _, testScenario := range testScenarios {
		testFramework.Run(testScenario.scenarioName, func(testFramework *testing.T) {
			ignoreFilePath := writeIgnoreFile(testFramework, testScenario.fileContent)

			loadedEntries, loadError := gitignore.NewLoader().LoadEntries(ignoreFilePath)
			require.NoError(testFramework, loadError)
			require.Equal(testFramework, testScenario.expectedEntries, loadedEntries)
		})
	}
}

func TestLoadEntriesReturnsEmptyPresentListForEmptyFile(testFramework *testing.T) {
	ignoreFilePath := writeIgnoreFile(testFramework, "")

	loadedEntries, loadError := gitignore.NewLoader().LoadEntries(ignoreFilePath)
	require.NoError(testFramework, loadError)
	require.NotNil(testFramework, loadedEntries)
	require.Empty(testFramework, loadedEntries)
}

func TestLoadEntriesPropagatesOpenFailures(testFramework *testing.T) {
	missingIgnoreFilePath := filepath.Join(testFramework.TempDir(), ignoreFileNameConstant)

	loadedEntries, loadError := gitignore.NewLoader().LoadEntries(missingIgnoreFilePath)
	require.Error(testFramework, loadError)
	require.Nil(testFramework, loadedEntries)
}
