package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// CopyFlagName exposes the shared copy-mode flag name.
	CopyFlagName = "copy"
	// CopyFlagShorthand provides the shorthand for the copy-mode flag.
	CopyFlagShorthand = "c"
	// CopyFlagUsage describes the shared copy-mode flag purpose.
	CopyFlagUsage = "Preserve source repositories after copying"
)

// BindCopyFlag attaches the shared copy toggle to the command's persistent flag set.
func BindCopyFlag(command *cobra.Command, defaultValue bool) {
	if command == nil {
		return
	}

	persistentFlagSet := command.PersistentFlags()
	if persistentFlagSet.Lookup(CopyFlagName) != nil {
		return
	}
	AddToggleFlag(persistentFlagSet, nil, CopyFlagName, CopyFlagShorthand, defaultValue, CopyFlagUsage)
}

// ResolveCopyFlag reports the copy flag value and whether the user changed it
// on the command, its inherited flags, or the root command.
func ResolveCopyFlag(command *cobra.Command) (bool, bool) {
	if command == nil {
		return false, false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.Flags(),
		command.InheritedFlags(),
	}
	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}
		copyFlag := flagSet.Lookup(CopyFlagName)
		if copyFlag == nil {
			continue
		}
		if !copyFlag.Changed {
			continue
		}
		return copyFlag.Value.String() == toggleTrueCanonicalValue, true
	}

	return false, false
}
