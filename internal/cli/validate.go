package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a TALON.md against the manifest schema",
	Long: `Validate a talon manifest and report every problem found, not just the first.

<path> may be a TALON.md file or a talon directory containing one. A version
that is not semantic (e.g. 1.2.0) is reported as a warning only.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, branding.ManifestFile())
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Valid {
		fmt.Fprintf(out, "%s %s\n", color.RedString("✗"), path)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return fmt.Errorf("%w: %d issue(s) in %s", errValidationFailed, len(result.Issues), path)
	}

	m, err := manifest.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s (%s v%s)\n", color.GreenString("✓"), path, m.Name, m.Version)
	if _, ok := m.SemVer(); !ok {
		fmt.Fprintf(out, "  %s version %q is not a semantic version\n", color.YellowString("warning:"), m.Version)
	}
	return nil
}
