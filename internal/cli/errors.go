package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/loader"
	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/femtoclaw/talon/internal/registry"
)

// errValidationFailed is returned by validate when the manifest has issues.
var errValidationFailed = errors.New("manifest validation failed")

// describeError maps an error to a short label and a remediation hint.
// The hint is empty when there is nothing useful to suggest.
func describeError(err error) (label, hint string) {
	bin := branding.CLIName()

	var ioErr *registry.IOError
	switch {
	case errors.Is(err, manifest.ErrMissingFrontmatter):
		return "missing frontmatter",
			"TALON.md must open with a '---' line, then YAML, then a closing '---' line."
	case errors.Is(err, manifest.ErrInvalidFrontmatter):
		return "invalid frontmatter",
			fmt.Sprintf("Run '%s validate <path>' to list every problem.", bin)
	case errors.Is(err, registry.ErrManifestNotFound):
		return "manifest not found",
			fmt.Sprintf("The directory passed to '%s add' must contain %s at its root.", bin, branding.ManifestFile())
	case errors.Is(err, registry.ErrIndexCorrupt):
		return "index corrupt",
			fmt.Sprintf("Delete %s and run '%s discover' to rebuild it.", branding.IndexFile(), bin)
	case errors.Is(err, registry.ErrUnsafeName):
		return "unsafe name",
			"Talon names must be a single directory name without path separators."
	case errors.Is(err, loader.ErrNotFound):
		return "not found",
			fmt.Sprintf("Run '%s list' to see installed talons.", bin)
	case errors.Is(err, errValidationFailed):
		return "validation failed", ""
	case errors.As(err, &ioErr):
		return "i/o failure",
			fmt.Sprintf("Check that %s exists and is accessible.", ioErr.Path)
	default:
		return "error", ""
	}
}

// printError writes a colored error block for err to w.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	label, hint := describeError(err)
	fmt.Fprintf(w, "%s %s\n", red("Error ("+label+"):"), err)
	if hint != "" {
		fmt.Fprintf(w, "  %s\n", dim(hint))
	}
}
