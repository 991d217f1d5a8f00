package cli

import (
	"fmt"
	"os"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/config"
	"github.com/femtoclaw/talon/internal/loader"
	"github.com/femtoclaw/talon/internal/logging"
	"github.com/femtoclaw/talon/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDir      string
	flagGlobal   bool
	flagLogLevel string
	flagDebug    bool
)

// logger is built once per invocation in PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages a local registry of talons: self-describing capability
packages made of a directory with a TALON.md manifest and supporting files.

The registry directory defaults to ./talons and can be changed with --dir,
the TALON_DIR environment variable, or the "dir" key in ~/.talon/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDir, "dir", config.DefaultDir, "Registry directory")
	pf.BoolVarP(&flagGlobal, "global", "g", false, "Use the per-user registry in the platform data directory")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flagDebug, "debug", false, "Shorthand for --log-level=debug")
}

// setup loads configuration, lets flags override it, and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}
	pf := cmd.Root().PersistentFlags()
	if err := config.BindFlag(config.KeyDir, pf.Lookup("dir")); err != nil {
		return err
	}
	if err := config.BindFlag(config.KeyLogLevel, pf.Lookup("log-level")); err != nil {
		return err
	}

	cfg := logging.DefaultConfig()
	cfg.Level = config.LogLevel()
	if flagDebug {
		cfg.Level = "debug"
	}
	l, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	logger = l
	return nil
}

// openRegistry binds a registry to the configured directory, or to the
// platform data root with --global.
func openRegistry() (*registry.Registry, error) {
	if flagGlobal {
		return registry.New(registry.WithLogger(logger))
	}
	return registry.FromDir(config.RegistryDir(), registry.WithLogger(logger))
}

func openLoader() (*loader.Loader, *registry.Registry, error) {
	reg, err := openRegistry()
	if err != nil {
		return nil, nil, err
	}
	return loader.New(reg, loader.WithLogger(logger)), reg, nil
}

// Execute runs the root command with build info injected via ldflags. A
// failing command has its error printed to stderr before it is returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}
