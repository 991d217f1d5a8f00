package manifest

import (
	"bytes"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Render serializes m back into TALON.md form with body as the documentation
// section. Parse(Render(m, body)) yields a manifest equal to m.
func Render(m *Manifest, body string) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encoding manifest %s: %w", m.Name, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding manifest %s: %w", m.Name, err)
	}

	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	b.Write(buf.Bytes())
	b.WriteString(Delimiter + "\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	return b.String(), nil
}
