// Package macros loads user-defined canned commands from a YAML file and
// registers them as interpreter handlers. A macro replays its output lines
// on the sink when dispatched.
package macros

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed macros.schema.json
var schemaSource string

// Macro is one canned command definition.
type Macro struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Output      []string `yaml:"output"`
}

type macroFile struct {
	Macros []Macro `yaml:"macros"`
}

// Load reads macro definitions from path. A missing or empty file means no
// macros and is not an error. The file is validated against the embedded
// schema before decoding, so a malformed definition is reported with the
// schema's diagnostics instead of a half-registered macro set.
func Load(path string) ([]Macro, error) {
	if path == "" {
		return nil, fmt.Errorf("macro file path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read macro file %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("macro file %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var f macroFile
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode macro file %s: %w", path, err)
	}

	return f.Macros, nil
}

// validate checks the raw YAML document against the embedded JSON schema.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	// A document with only comments or separators decodes to nil and means
	// no macros, same as a missing file.
	if doc == nil {
		return nil
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid macro definitions: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	raw, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaSource))
	if err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("macros.schema.json", raw); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	schema, err := compiler.Compile("macros.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
