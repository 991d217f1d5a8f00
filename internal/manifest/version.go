package manifest

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SemVer interprets the free-form version as semantic version. ok is false
// when the version is not semver; that is allowed and never an error.
func (m *Manifest) SemVer() (v *semver.Version, ok bool) {
	v, err := semver.NewVersion(strings.TrimSpace(m.Version))
	if err != nil {
		return nil, false
	}
	return v, true
}

// CompareVersions compares two free-form versions. ok is false when either
// side is not semver, in which case cmp is meaningless.
func CompareVersions(a, b string) (cmp int, ok bool) {
	va, err := semver.NewVersion(strings.TrimSpace(a))
	if err != nil {
		return 0, false
	}
	vb, err := semver.NewVersion(strings.TrimSpace(b))
	if err != nil {
		return 0, false
	}
	return va.Compare(vb), true
}
