package cue

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Schema names, one per embedded file.
const (
	SchemaConfig = "config"
	SchemaInputs = "inputs"
)

// ValidationError is one schema violation.
type ValidationError struct {
	File    string
	Path    string
	Message string
}

func (e ValidationError) String() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// Validator checks decoded documents against the embedded CUE schemas.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every embedded .cue file.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if err := inst.Err(); err != nil {
			return fmt.Errorf("could not compile schema %s: %w", entry.Name(), err)
		}

		// config.cue -> config
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateConfig validates configuration data against #Config.
func (v *Validator) ValidateConfig(data map[string]any) ([]ValidationError, error) {
	return v.validate(SchemaConfig, "#Config", data)
}

// ValidateInputs validates one input set against #Inputs.
func (v *Validator) ValidateInputs(data map[string]any) ([]ValidationError, error) {
	return v.validate(SchemaInputs, "#Inputs", data)
}

func (v *Validator) validate(schemaName, definition string, data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("schema %q not loaded", schemaName)
	}

	def := schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return nil, fmt.Errorf("schema %q has no %s definition", schemaName, definition)
	}

	value := v.ctx.Encode(data)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("error encoding data: %w", err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}
	return nil, nil
}

// extractErrors flattens a CUE error list into ValidationErrors.
func extractErrors(err error) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		out = append(out, ValidationError{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: err.Error()})
	}
	return out
}
