package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "manifest.schema.json"

//go:embed schema/manifest.schema.json
var schemaJSON []byte

var (
	loadSchema = sync.OnceValues(compileSchema)
	printer    = message.NewPrinter(language.English)
)

// ValidationResult is the outcome of checking frontmatter against the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue // sorted by Path, then Keyword
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the frontmatter, "" for the root
	Message string
	Keyword string // failing schema keyword, e.g. "required" or "type"
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Summary joins all issues into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
}

// Validate checks a raw YAML frontmatter block against the manifest schema
// and reports every violation. The error return is reserved for YAML that
// does not decode and for schema loading failures.
func Validate(frontmatter []byte) (*ValidationResult, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	inst, err := yamlToInstance(frontmatter)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating frontmatter: %w", err)
	}
	return &ValidationResult{Issues: issuesFrom(ve)}, nil
}

// ValidateContent validates the frontmatter of full TALON.md content.
func ValidateContent(content string) (*ValidationResult, error) {
	front, _, ok := SplitFrontmatter(content)
	if !ok || strings.TrimSpace(front) == "" {
		return nil, ErrMissingFrontmatter
	}
	return Validate([]byte(front))
}

// ValidateFile reads a TALON.md file and validates its frontmatter.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	result, err := ValidateContent(string(data))
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return result, nil
}

// yamlToInstance decodes YAML and re-encodes it through JSON so the
// validator sees JSON-native types.
func yamlToInstance(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	encoded, err := json.Marshal(jsonCompatible(raw))
	if err != nil {
		return nil, fmt.Errorf("converting frontmatter to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("converting frontmatter to JSON: %w", err)
	}
	return inst, nil
}

// jsonCompatible re-keys YAML mappings with non-string keys by their string
// form so encoding/json accepts them.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = jsonCompatible(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = jsonCompatible(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = jsonCompatible(child)
		}
		return out
	default:
		return val
	}
}

// issuesFrom flattens the leaves of a validation error tree into unique,
// ordered issues. Container keywords that only group other failures are
// dropped.
func issuesFrom(root *jsonschema.ValidationError) []ValidationIssue {
	seen := map[ValidationIssue]bool{}
	var issues []ValidationIssue

	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, c := range ve.Causes {
				walk(c)
			}
			return
		}
		issue, ok := leafIssue(ve)
		if !ok || seen[issue] {
			return
		}
		seen[issue] = true
		issues = append(issues, issue)
	}
	walk(root)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}
		return issues[i].Keyword < issues[j].Keyword
	})
	return issues
}

func leafIssue(ve *jsonschema.ValidationError) (ValidationIssue, bool) {
	if ve.ErrorKind == nil {
		return ValidationIssue{}, false
	}
	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return ValidationIssue{}, false
	}
	keyword := kw[len(kw)-1]
	switch keyword {
	case "allOf", "$ref":
		return ValidationIssue{}, false
	}

	issue := ValidationIssue{
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return issue, true
}
