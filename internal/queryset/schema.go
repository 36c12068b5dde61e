package queryset

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/queryset.cue
var schemaFS embed.FS

const (
	schemaFile = "schemas/queryset.cue"
	schemaDef  = "#QuerySet"
)

// SchemaError reports a query-set file that does not match the schema
type SchemaError struct {
	File     string
	Messages []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: schema validation failed: %s", e.File, strings.Join(e.Messages, "; "))
}

// Validator checks decoded query-set data against the embedded CUE schema
type Validator struct {
	mu  sync.Mutex // cue.Context is not safe for concurrent use
	ctx *cue.Context
	def cue.Value
}

// NewValidator compiles the embedded schema
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("queryset.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("error compiling schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath(schemaDef))
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition %s not found", schemaDef)
	}

	return &Validator{ctx: ctx, def: def}, nil
}

// Validate checks data decoded from file. It returns a *SchemaError when the
// data does not conform.
func (v *Validator) Validate(file string, data map[string]any) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}

	unified := v.def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return schemaError(file, err)
	}

	// Concreteness catches missing required fields
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return schemaError(file, err)
	}

	return nil
}

func schemaError(file string, err error) *SchemaError {
	var msgs []string
	for _, e := range cueerrors.Errors(err) {
		msgs = append(msgs, e.Error())
	}
	if len(msgs) == 0 {
		msgs = []string{err.Error()}
	}
	return &SchemaError{File: file, Messages: msgs}
}
