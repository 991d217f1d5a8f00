package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/femtoclaw/talon/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details about an installed talon",
	Long: `Show the index entry of an installed talon together with the commands
declared in its manifest and any required environment variables that are
not set in the current environment.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(infoCmd)
}

// infoView is the JSON shape of "info".
type infoView struct {
	registry.Entry
	Commands   []manifest.Command `json:"commands"`
	MissingEnv []manifest.EnvVar  `json:"missing_env"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	name := args[0]
	out := cmd.OutOrStdout()

	ld, reg, err := openLoader()
	if err != nil {
		return err
	}

	entry, ok := reg.Get(name)
	if !ok {
		fmt.Fprintf(out, "Talon '%s' not found\n", name)
		return nil
	}

	view := infoView{
		Entry:      entry,
		Commands:   []manifest.Command{},
		MissingEnv: []manifest.EnvVar{},
	}

	// The index entry is enough to answer; manifest details are best effort.
	if info, err := ld.Load(name); err != nil {
		logger.Warn("could not read manifest", zap.String("name", name), zap.Error(err))
	} else {
		view.Commands = info.Manifest.Commands
		if missing, err := ld.RequiredEnvironment(name, os.LookupEnv); err == nil {
			view.MissingEnv = missing
		}
	}

	if infoJSON {
		return printJSON(out, view)
	}
	printInfo(out, view)
	return nil
}

func printInfo(w io.Writer, v infoView) {
	fmt.Fprintln(w, v.Name)
	fmt.Fprintf(w, "Version: %s\n", v.Version)
	fmt.Fprintf(w, "Description: %s\n", v.Description)
	if v.Author != "" {
		fmt.Fprintf(w, "Author: %s\n", v.Author)
	}
	if v.License != "" {
		fmt.Fprintf(w, "License: %s\n", v.License)
	}
	if len(v.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(v.Tags, ", "))
	}
	fmt.Fprintf(w, "Path: %s\n", v.Path)

	if len(v.Commands) > 0 {
		fmt.Fprintln(w, "\nCommands:")
		for _, c := range v.Commands {
			fmt.Fprintf(w, "  %s - %s\n", c.Name, c.Description)
		}
	}

	if len(v.MissingEnv) > 0 {
		fmt.Fprintln(w, "\nMissing required environment:")
		for _, env := range v.MissingEnv {
			if env.Description != "" {
				fmt.Fprintf(w, "  %s - %s\n", env.Name, env.Description)
			} else {
				fmt.Fprintf(w, "  %s\n", env.Name)
			}
		}
	}
}
