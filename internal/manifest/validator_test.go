package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-full.md", "valid-minimal.md"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			require.NoError(t, err)
			if !result.Valid {
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-missing-name.md", ""},
		{"invalid-arg-missing-type.md", "/commands/0/args/0"},
		{"invalid-wrong-type.md", "/tags"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var paths []string
			for _, issue := range result.Issues {
				paths = append(paths, issue.Path)
				assert.NotEmpty(t, issue.Message)
			}
			assert.Contains(t, paths, tt.path)
		})
	}
}

func TestValidate_ReportsEveryIssue(t *testing.T) {
	result, err := Validate([]byte("name: x\ncommands:\n  - name: a\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	// version, description and commands/0/description are all missing.
	assert.GreaterOrEqual(t, len(result.Issues), 2)
	assert.NotEmpty(t, result.Summary())
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.md"))
	assert.Error(t, err)
}

func TestValidateContent_MissingFrontmatter(t *testing.T) {
	_, err := ValidateContent("plain text")
	assert.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.md"))
	assert.Error(t, err)
}

func TestValidate_IssuesOrderedByPath(t *testing.T) {
	result, err := Validate([]byte("name: x\nversion: \"1\"\ndescription: d\ncommands:\n  - name: b\n  - name: a\n"))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.GreaterOrEqual(t, len(result.Issues), 2)
	for i := 1; i < len(result.Issues); i++ {
		assert.LessOrEqual(t, result.Issues[i-1].Path, result.Issues[i].Path)
	}
	assert.Contains(t, result.Summary(), "/commands/0")
}

func TestValidate_NonStringKeys(t *testing.T) {
	result, err := Validate([]byte("name: x\nversion: \"1\"\ndescription: d\nmetadata:\n  1: one\n"))
	require.NoError(t, err)
	assert.NotNil(t, result)
}
