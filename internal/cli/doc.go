// Package cli defines the Cobra command tree for the talon CLI. Each file in
// this package registers one top-level command (list, add, discover, etc.)
// with the root command. Command implementations delegate to the registry,
// loader, and scaffold packages and only handle flag parsing, output
// formatting, and error presentation.
package cli
