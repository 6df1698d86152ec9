package schema

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-record",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lessonId": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			},
			"required": []string{"lessonId"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(testSchema(), []byte(`{"lessonId":"a","score":80}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `{"lessonId":`},
		{"missing required", `{"score":10}`},
		{"wrong type", `{"lessonId":7}`},
		{"out of range", `{"lessonId":"a","score":101}`},
		{"not an object", `[1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(testSchema(), []byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var inv *ErrInvalid
			if !errors.As(err, &inv) {
				t.Fatalf("expected *ErrInvalid, got %T", err)
			}
			if inv.Schema != "test-record" {
				t.Errorf("Schema = %q, want test-record", inv.Schema)
			}
		})
	}
}

func TestValidate_CachesCompiled(t *testing.T) {
	s := testSchema()
	s.Name = "cached-record"
	if err := Validate(s, []byte(`{"lessonId":"a"}`)); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, ok := cache.Load("cached-record"); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := Validate(s, []byte(`{"lessonId":"b"}`)); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}
