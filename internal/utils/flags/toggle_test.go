package flags_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	flagutils "github.com/dsemenov/repomove/internal/utils/flags"
)

const toggleFlagNameConstant = "enabled"

func newToggleFlagSet(defaultValue bool, target *bool) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("toggle-test", pflag.ContinueOnError)
	flagutils.AddToggleFlag(flagSet, target, toggleFlagNameConstant, "", defaultValue, "toggle under test")
	return flagSet
}

func TestAddToggleFlagParsesLiteralValues(testFramework *testing.T) {
	testScenarios := []struct {
		literalValue  string
		expectedState bool
	}{
		{literalValue: "true", expectedState: true},
		{literalValue: "yes", expectedState: true},
		{literalValue: "ON", expectedState: true},
		{literalValue: "1", expectedState: true},
		{literalValue: "y", expectedState: true},
		{literalValue: "false", expectedState: false},
		{literalValue: "no", expectedState: false},
		{literalValue: "Off", expectedState: false},
		{literalValue: "0", expectedState: false},
		{literalValue: "n", expectedState: false},
	}

	for _, testScenario := range testScenarios {
		testFramework.Run(testScenario.literalValue, func(testFramework *testing.T) {
			var toggleState bool
			flagSet := newToggleFlagSet(!testScenario.expectedState, &toggleState)

			require.NoError(testFramework, flagSet.Parse([]string{"--" + toggleFlagNameConstant + "=" + testScenario.literalValue}))
			require.Equal(testFramework, testScenario.expectedState, toggleState)
		})
	}
}

func TestAddToggleFlagRejectsUnknownLiterals(testFramework *testing.T) {
	flagSet := newToggleFlagSet(false, nil)

	parseError := flagSet.Parse([]string{"--" + toggleFlagNameConstant + "=maybe"})
	require.Error(testFramework, parseError)
	require.Contains(testFramework, parseError.Error(), `invalid toggle value "maybe"`)
}

func TestAddToggleFlagDefaultsToTrueWhenValueOmitted(testFramework *testing.T) {
	var toggleState bool
	flagSet := newToggleFlagSet(false, &toggleState)

	require.NoError(testFramework, flagSet.Parse([]string{"--" + toggleFlagNameConstant}))
	require.True(testFramework, toggleState)
}

func TestResolveCopyFlagReportsChangedState(testFramework *testing.T) {
	rootCommand := &cobra.Command{Use: "root", RunE: func(command *cobra.Command, arguments []string) error { return nil }}
	flagutils.BindCopyFlag(rootCommand, false)

	copyValue, copyChanged := flagutils.ResolveCopyFlag(rootCommand)
	require.False(testFramework, copyChanged)
	require.False(testFramework, copyValue)

	rootCommand.SetArgs([]string{"--" + flagutils.CopyFlagName})
	require.NoError(testFramework, rootCommand.Execute())

	copyValue, copyChanged = flagutils.ResolveCopyFlag(rootCommand)
	require.True(testFramework, copyChanged)
	require.True(testFramework, copyValue)
}

func TestResolveCopyFlagFindsRootPersistentFlagFromSubcommand(testFramework *testing.T) {
	var observedValue bool
	var observedChanged bool
	childCommand := &cobra.Command{
		Use: "child",
		RunE: func(command *cobra.Command, arguments []string) error {
			observedValue, observedChanged = flagutils.ResolveCopyFlag(command)
			return nil
		},
	}
	rootCommand := &cobra.Command{Use: "root"}
	flagutils.BindCopyFlag(rootCommand, false)
	rootCommand.AddCommand(childCommand)

	rootCommand.SetArgs([]string{"child", "--" + flagutils.CopyFlagName + "=yes"})
	require.NoError(testFramework, rootCommand.Execute())
	require.True(testFramework, observedChanged)
	require.True(testFramework, observedValue)
}
