package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/femtoclaw/talon/internal/branding"
	"github.com/femtoclaw/talon/internal/manifest"
	"github.com/femtoclaw/talon/internal/userdata"
)

// Template sets available under scaffolds/.
const (
	SetExample = "example"
	SetTalon   = "talon"
)

// ExampleDirName is the directory "talon init" creates inside the registry.
const ExampleDirName = "example-talon"

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name        string // e.g., "github"
	Version     string // e.g., "0.1.0"
	Description string
	Author      string
	Year        int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData for a blank talon.
func NewScaffoldData(name string) *ScaffoldData {
	return &ScaffoldData{
		Name:        name,
		Version:     "0.1.0",
		Description: fmt.Sprintf("%s talon: %s", branding.DisplayName(), name),
		Author:      "Your Name",
		Year:        time.Now().Year(),
	}
}

// ExampleData returns the variables for the example talon written by Init.
func ExampleData() *ScaffoldData {
	return &ScaffoldData{
		Name:        "example",
		Version:     "1.0.0",
		Description: "An example talon demonstrating the format",
		Author:      "Your Name",
		Year:        time.Now().Year(),
	}
}

// Generate creates a new talon in outputDir from a template set. The output
// directory must be empty or absent.
func Generate(set string, data *ScaffoldData, outputDir string) (*Result, error) {
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}
	return render(set, data, outputDir)
}

// Init writes the example talon to <dir>/example-talon unless its manifest
// already exists. It reports the manifest path and whether it was created.
func Init(dir string) (string, bool, error) {
	outputDir := filepath.Join(dir, ExampleDirName)
	manifestPath := filepath.Join(outputDir, branding.ManifestFile())

	if _, err := os.Stat(manifestPath); err == nil {
		return manifestPath, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", false, fmt.Errorf("checking %s: %w", manifestPath, err)
	}

	if _, err := render(SetExample, ExampleData(), outputDir); err != nil {
		return "", false, err
	}
	return manifestPath, true, nil
}

func render(set string, data *ScaffoldData, outputDir string) (*Result, error) {
	// embed.FS paths always use forward slashes.
	templatesDir := path.Join("scaffolds", set)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	if err := userdata.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := path.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), userdata.FilePermNormal); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	// Validate the generated manifest against the JSON Schema.
	manifestFile := filepath.Join(outputDir, branding.ManifestFile())
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				result.Warnings = append(result.Warnings, issue.String())
			}
		}
	}

	return result, nil
}
