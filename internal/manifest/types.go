package manifest

// Manifest is the parsed frontmatter of a TALON.md file.
type Manifest struct {
	Name        string    `yaml:"name" json:"name"`
	Version     string    `yaml:"version" json:"version"`
	Description string    `yaml:"description" json:"description"`
	Author      string    `yaml:"author,omitempty" json:"author,omitempty"`
	License     string    `yaml:"license,omitempty" json:"license,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags"`
	Repository  string    `yaml:"repository,omitempty" json:"repository,omitempty"`
	Homepage    string    `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	Runtime     *Runtime  `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	Permissions []string  `yaml:"permissions,omitempty" json:"permissions"`
	Environment []EnvVar  `yaml:"environment,omitempty" json:"environment"`
	Commands    []Command `yaml:"commands,omitempty" json:"commands"`
}

// Runtime names the execution environment a talon expects, e.g. {kind: python, version: "3.12"}.
type Runtime struct {
	Kind    string `yaml:"kind" json:"kind"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// EnvVar declares an environment variable the talon reads.
type EnvVar struct {
	Name        string `yaml:"name" json:"name"`
	Required    bool   `yaml:"required" json:"required"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     string `yaml:"default,omitempty" json:"default,omitempty"`
}

// Command is an invokable operation exposed by a talon.
type Command struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Args        []Arg  `yaml:"args,omitempty" json:"args"`
}

// Arg is a single command argument. Type is a free-form tag such as "string" or "int".
type Arg struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Required    bool   `yaml:"required" json:"required"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// normalize replaces absent sequences with empty ones so a parsed manifest
// never carries nil slices.
func (m *Manifest) normalize() {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.Permissions == nil {
		m.Permissions = []string{}
	}
	if m.Environment == nil {
		m.Environment = []EnvVar{}
	}
	if m.Commands == nil {
		m.Commands = []Command{}
	}
	for i := range m.Commands {
		if m.Commands[i].Args == nil {
			m.Commands[i].Args = []Arg{}
		}
	}
}
