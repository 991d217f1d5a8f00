package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Delimiter is the line that opens and closes the frontmatter block.
const Delimiter = "---"

var (
	// ErrMissingFrontmatter is returned when content has no frontmatter block
	// or the block is blank.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrInvalidFrontmatter is returned when the frontmatter block does not
	// decode into a Manifest: bad YAML, wrong types, or missing required fields.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// Parse extracts the frontmatter from TALON.md content and decodes it.
// Anything before the first delimiter line is ignored, and the documentation
// body after the second delimiter is discarded.
func Parse(content string) (*Manifest, error) {
	front, _, ok := SplitFrontmatter(content)
	if !ok || strings.TrimSpace(front) == "" {
		return nil, ErrMissingFrontmatter
	}

	var m Manifest
	if err := yaml.Unmarshal([]byte(front), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	result, err := Validate([]byte(front))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFrontmatter, result.Summary())
	}

	m.normalize()
	return &m, nil
}

// ParseFile reads a TALON.md file and parses it.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// SplitFrontmatter splits content into at most three parts on delimiter
// lines and returns the second (frontmatter) and third (body) parts. ok is
// false when no delimiter line exists. When only one delimiter is present,
// everything after it is the frontmatter.
func SplitFrontmatter(content string) (front, body string, ok bool) {
	lines := strings.SplitAfter(content, "\n")

	start := -1
	for i, line := range lines {
		if !isDelimiter(line) {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		return strings.Join(lines[start+1:i], ""), strings.Join(lines[i+1:], ""), true
	}

	if start < 0 {
		return "", "", false
	}
	return strings.Join(lines[start+1:], ""), "", true
}

// isDelimiter reports whether line is a frontmatter fence. The fence must
// start in column 0 so an indented "---" inside a YAML block scalar stays
// part of the value.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r\n") == Delimiter
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
