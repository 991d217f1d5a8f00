package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fataler is satisfied by both *testing.T and *rapid.T.
type fataler interface {
	Fatalf(format string, args ...any)
}

// writeTalon creates dir/TALON.md with a minimal valid manifest and returns dir.
func writeTalon(t fataler, dir, name, version, description string, tags ...string) string {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %s\n", name)
	fmt.Fprintf(&b, "version: %q\n", version)
	fmt.Fprintf(&b, "description: %q\n", description)
	if len(tags) > 0 {
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(tags, ", "))
	}
	b.WriteString("---\n\n# ")
	b.WriteString(name)
	b.WriteString("\n")

	if err := os.WriteFile(filepath.Join(dir, "TALON.md"), []byte(b.String()), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return dir
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := FromDir(filepath.Join(t.TempDir(), "talons"))
	require.NoError(t, err)
	return r
}

func entryNames(entries []Entry) []string {
	SortByName(entries)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
