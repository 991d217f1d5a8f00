// Package scaffold generates talon directories from embedded templates. It
// powers "talon init", which drops an example talon into the registry
// directory, and "talon new", which creates a blank talon ready to edit.
package scaffold
