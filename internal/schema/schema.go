// Package schema validates JSON documents against named JSON Schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// ErrInvalid is returned when a document fails to parse or validate.
type ErrInvalid struct {
	Schema string
	Err    error
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *ErrInvalid) Unwrap() error { return e.Err }

// cache holds compiled schemas by name.
var cache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s. It returns *ErrInvalid when the
// document is malformed or does not match.
func Validate(s *Schema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compile(s)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalid{Schema: s.Name, Err: err}
	}
	return nil
}

func compile(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := cache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded value, not Go map literals with typed slices.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	cache.Store(s.Name, compiled)
	return compiled, nil
}
