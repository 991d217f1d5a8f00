package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newOutput      string
	newDescription string
	newAuthor      string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new talon",
	Long: `Create a directory containing a blank TALON.md for a new talon.

The directory defaults to ./<name>. Once edited, install it with
'talon add <dir>'.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output directory (default ./<name>)")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Description written to the manifest")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Author written to the manifest")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid talon name %q: must be a single directory name", name)
	}

	outDir := newOutput
	if outDir == "" {
		outDir = filepath.Join(".", name)
	}

	data := scaffold.NewScaffoldData(name)
	if newDescription != "" {
		data.Description = newDescription
	}
	if newAuthor != "" {
		data.Author = newAuthor
	}

	result, err := scaffold.Generate(scaffold.SetTalon, data, outDir)
	if err != nil {
		return fmt.Errorf("scaffolding %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created talon %s in %s\n", name, result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	fmt.Fprintf(out, "\nEdit %s, then run '%s add %s'.\n",
		filepath.Join(result.OutputDir, branding.ManifestFile()), branding.CLIName(), result.OutputDir)
	return nil
}
