package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan the registry directory and index every talon found",
	Long: `Scan each immediate subdirectory of the registry directory for a TALON.md,
parse it, and record the talon in the index.

Talons whose manifest fails to parse are skipped; run with --log-level=warn
or higher verbosity to see why.`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	discovered, err := reg.Discover()
	if err != nil {
		return err
	}
	sort.Slice(discovered, func(i, j int) bool {
		return discovered[i].Manifest.Name < discovered[j].Manifest.Name
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Discovered %d talon(s)\n", len(discovered))
	for _, t := range discovered {
		fmt.Fprintf(out, "  - %s v%s\n", t.Manifest.Name, t.Manifest.Version)
	}
	return nil
}
