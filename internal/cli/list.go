package cli

import (
	"fmt"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/registry"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed talons",
	Long:  `List every talon recorded in the registry index, sorted by name.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	entries := reg.List()
	registry.SortByName(entries)

	if listJSON {
		return printJSON(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No talons installed. Run `%s discover` to find talons.\n", branding.CLIName())
		return nil
	}
	return printEntryTable(cmd.OutOrStdout(), entries)
}
