package cli

import (
	"fmt"

	"github.com/femtoclaw/talon/internal/registry"
	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search installed talons",
	Long: `Search installed talons by name, description, and tags.

The query is matched as a case-insensitive substring.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	reg, err := openRegistry()
	if err != nil {
		return err
	}

	results := reg.Search(query)
	registry.SortByName(results)

	if searchJSON {
		return printJSON(cmd.OutOrStdout(), results)
	}

	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No talons found matching '%s'\n", query)
		return nil
	}
	return printEntryTable(cmd.OutOrStdout(), results)
}
