package cli

import (
	"fmt"
	"strings"

	"github.com/femtoclaw/talon/internal/loader"
	"github.com/spf13/cobra"
)

var capabilitiesJSON bool

var capabilitiesCmd = &cobra.Command{
	Use:     "capabilities <name>",
	Aliases: []string{"caps"},
	Short:   "List the capabilities a talon exposes",
	Long: `List every command declared by an installed talon as a capability named
<talon>.<command>, with its arguments. Required arguments are marked with *.`,
	Args: cobra.ExactArgs(1),
	RunE: runCapabilities,
}

func init() {
	capabilitiesCmd.Flags().BoolVar(&capabilitiesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(capabilitiesCmd)
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	ld, _, err := openLoader()
	if err != nil {
		return err
	}

	caps, err := ld.Capabilities(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if capabilitiesJSON {
		return printJSON(out, caps)
	}

	if len(caps) == 0 {
		fmt.Fprintf(out, "Talon '%s' declares no commands\n", args[0])
		return nil
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "CAPABILITY\tARGS\tDESCRIPTION")
	for _, c := range caps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, orDash(formatArgs(c.Args)), truncate(c.Description, 60))
	}
	return tw.Flush()
}

// formatArgs renders arguments as "name:type" pairs, starring required ones.
func formatArgs(args []loader.CapabilityArg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		s := a.Name + ":" + a.Type
		if a.Required {
			s += "*"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
