package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Install a talon from a local directory",
	Long: `Copy the talon at <path> into the registry directory under its manifest name
and record it in the index.

An installed talon with the same name is deleted first, so re-adding replaces
its contents entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	name, err := reg.Add(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added talon: %s\n", name)
	return nil
}
