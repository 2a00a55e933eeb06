package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"
)

//go:embed schema.json
var embeddedSchema string

const embeddedSchemaURL = "singalong.v1.schema.json"

// LoadAndValidate loads and validates the configuration.
// An empty schemaPath selects the schema built into the binary.
func LoadAndValidate(path, schemaPath string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config: %w", err)
	}

	return Parse(data, schemaPath)
}

// Parse validates a YAML document and fills in defaults.
func Parse(data []byte, schemaPath string) (*Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	values, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config: %w: got %T", ErrInvalidFormat, raw)
	}

	schema, err := compileSchema(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("config: failed to compile schema: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config: config validation failed: %w", err)
	}

	cfg := New(values)
	if !cfg.Has(KeyDataPath) {
		cfg.Set(KeyDataPath, DefaultDataPaths())
	}

	return cfg, nil
}

func compileSchema(schemaPath string) (*jsonschema.Schema, error) {
	if schemaPath == "" {
		return jsonschema.CompileString(embeddedSchemaURL, embeddedSchema)
	}
	return jsonschema.Compile(schemaPath)
}
