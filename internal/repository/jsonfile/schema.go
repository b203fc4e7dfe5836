package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON string

const snapshotSchemaURL = "snapshot.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func snapshotSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(snapshotSchemaURL, strings.NewReader(snapshotSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(snapshotSchemaURL)
	})
	return compiledSchema, schemaErr
}

// SchemaError describes the first schema violation found in a snapshot.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("snapshot schema: %s", e.Message)
	}
	return fmt.Sprintf("snapshot schema: %s: %s", e.Path, e.Message)
}

// validateSnapshot checks raw snapshot bytes against the embedded schema.
func validateSnapshot(data []byte) error {
	schema, err := snapshotSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return &SchemaError{Message: err.Error()}
		}
		return firstSchemaError(ve)
	}
	return nil
}

func firstSchemaError(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{
		Path:    pointerToPath(ve.InstanceLocation),
		Message: ve.Message,
	}
}

// pointerToPath turns "/tasks/0/done" into "tasks[0].done".
func pointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
