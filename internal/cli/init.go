package cli

import (
	"fmt"

	"github.com/femtoclaw/talon/internal/scaffold"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the registry directory with an example talon",
	Long: `Create the registry directory if needed and write an example talon to
example-talon/TALON.md inside it. An existing example is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	path, created, err := scaffold.Init(reg.Dir())
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created example talon at %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Example talon already exists at %s\n", path)
	}
	return nil
}
