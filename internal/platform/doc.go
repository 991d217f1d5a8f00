// Package platform holds the few filesystem calls whose behavior differs
// between Unix and Windows.
package platform
