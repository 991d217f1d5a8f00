// Package userdata resolves where talon keeps its data when the caller does
// not name a registry directory explicitly. The default is the platform data
// directory plus the branded subpath, with an environment override.
package userdata
