// Package loader turns registry index entries back into full manifests.
//
// The registry index only stores a summary of each talon. The loader looks a
// talon up by name, re-reads its TALON.md from disk on every call, and derives
// the views consumers need: the flat capability list of a talon and a
// human-readable summary of several talons suitable for an agent prompt.
package loader
