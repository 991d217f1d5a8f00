// Package registry maintains the local talon registry: a directory of
// installed talons plus an index.json summarizing them. It discovers talons
// already on disk, installs new ones by copying their directory in, removes
// them, and answers list/get/search queries from the index without
// re-parsing manifests.
//
// A Registry is not safe for concurrent use, and two Registry values bound
// to the same directory (in one process or several) will overwrite each
// other's index.
package registry
