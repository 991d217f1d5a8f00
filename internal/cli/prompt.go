package cli

import (
	"errors"
	"fmt"

	"github.com/femtoclaw/talon/internal/registry"
	"github.com/spf13/cobra"
)

var promptAll bool

var promptCmd = &cobra.Command{
	Use:   "prompt [name...]",
	Short: "Print an agent-ready summary of talons",
	Long: `Print a summary of the named talons suitable for inclusion in an agent's
system prompt: each talon's name, version, description, and commands.

Names that are not installed or whose manifest cannot be read are left out.
Use --all to summarize every installed talon.`,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().BoolVar(&promptAll, "all", false, "Summarize every installed talon")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	if !promptAll && len(args) == 0 {
		return errors.New("requires at least one talon name, or --all")
	}

	ld, reg, err := openLoader()
	if err != nil {
		return err
	}

	names := args
	if promptAll {
		entries := reg.List()
		registry.SortByName(entries)
		names = make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), ld.RenderSummary(names))
	return nil
}
