package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/abhisek/kartuli/internal/schema"
)

//go:embed data/*.json
var lessonData embed.FS

var itemSchema = map[string]any{
	"type":     "object",
	"required": []string{"prompt", "phonetic", "answer"},
	"properties": map[string]any{
		"prompt":   map[string]any{"type": "string", "minLength": 1},
		"phonetic": map[string]any{"type": "string", "minLength": 1},
		"answer":   map[string]any{"type": "string", "minLength": 1},
		"category": map[string]any{"type": "string"},
	},
	"additionalProperties": false,
}

// lessonFileSchema describes one data file: an array of lessons.
var lessonFileSchema = &schema.Schema{
	Name: "lesson-file",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"id", "title", "type", "order"},
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"title":       map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"type":        map[string]any{"enum": []string{"alphabet", "spelling", "phrases", "grammar", "flashcards"}},
				"order":       map[string]any{"type": "integer"},
				"items":       map[string]any{"type": "array", "items": itemSchema},
				"rules": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"name", "explanation", "examples"},
						"properties": map[string]any{
							"name":        map[string]any{"type": "string"},
							"explanation": map[string]any{"type": "string"},
							"examples":    map[string]any{"type": "array", "items": itemSchema},
						},
					},
				},
				"tags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"poolTags": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"additionalProperties": false,
		},
	},
}

// Default returns the catalog built from the embedded lesson data. It panics
// if the data is invalid, which is a build defect.
var Default = sync.OnceValue(func() *Catalog {
	c, err := LoadFS(lessonData, "data")
	if err != nil {
		panic(fmt.Sprintf("kartuli: load catalog: %v", err))
	}
	return c
})

// LoadFS reads every *.json file in dir of fsys, validates it and builds a
// catalog. Files are read in name order.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var lessons []Lesson
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := schema.Validate(lessonFileSchema, data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		var batch []Lesson
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		lessons = append(lessons, batch...)
	}
	return New(lessons)
}
