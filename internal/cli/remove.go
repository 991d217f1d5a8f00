package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "uninstall"},
	Short:   "Remove an installed talon",
	Long: `Delete an installed talon's directory and drop it from the index.

Removing a name that is not installed does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	if err := reg.Remove(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed talon: %s\n", name)
	return nil
}
