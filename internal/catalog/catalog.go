// Package catalog holds the read-only lesson catalog.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog is an immutable, indexed set of lessons.
type Catalog struct {
	lessons []Lesson
	byID    map[string]int
	byType  map[Type][]Lesson
}

// New builds a catalog from lessons. Within each type, lessons are sorted by
// Order; lessons with equal Order keep their input order.
func New(lessons []Lesson) (*Catalog, error) {
	if err := validateLessons(lessons); err != nil {
		return nil, err
	}

	c := &Catalog{
		byID:   make(map[string]int, len(lessons)),
		byType: make(map[Type][]Lesson),
	}
	for _, l := range lessons {
		c.byType[l.Type] = append(c.byType[l.Type], l)
	}
	for t := range c.byType {
		slices.SortStableFunc(c.byType[t], func(a, b Lesson) int {
			return a.Order - b.Order
		})
	}
	for _, t := range AllTypes() {
		c.lessons = append(c.lessons, c.byType[t]...)
	}
	for i, l := range c.lessons {
		c.byID[l.ID] = i
	}
	return c, nil
}

// ByType returns the lessons of type t in display order. The result is a
// fresh slice; an unknown or empty type yields nil.
func (c *Catalog) ByType(t Type) []Lesson {
	return slices.Clone(c.byType[t])
}

// ByID returns the lesson with the given id.
func (c *Catalog) ByID(id string) (Lesson, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return c.lessons[i], true
}

// All returns every lesson, grouped by type in display order.
func (c *Catalog) All() []Lesson {
	return slices.Clone(c.lessons)
}

// Count returns the number of lessons of type t.
func (c *Catalog) Count(t Type) int {
	return len(c.byType[t])
}

// Types returns the lesson types that have at least one lesson, in
// display order.
func (c *Catalog) Types() []Type {
	var out []Type
	for _, t := range AllTypes() {
		if len(c.byType[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the total number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Tagged returns the flashcard lessons carrying any of tags, in display order.
func (c *Catalog) Tagged(tags ...string) []Lesson {
	var out []Lesson
	for _, l := range c.byType[TypeFlashcards] {
		if slices.ContainsFunc(tags, l.HasTag) {
			out = append(out, l)
		}
	}
	return out
}

// Pool returns the union of items across the flashcard lessons carrying any
// of tags.
func (c *Catalog) Pool(tags ...string) []Item {
	var out []Item
	for _, l := range c.Tagged(tags...) {
		out = append(out, l.Items...)
	}
	return out
}

// validateLessons performs structural checks on the lesson set.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string
	seen := make(map[string]bool, len(lessons))

	for _, l := range lessons {
		if l.ID == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has an empty id", l.Title))
			continue
		}
		if seen[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		seen[l.ID] = true

		if _, err := ParseType(string(l.Type)); err != nil {
			errs = append(errs, fmt.Sprintf("lesson %q: %v", l.ID, err))
		}
		if l.Type == TypeSpelling && len(l.PoolTags) == 0 {
			errs = append(errs, fmt.Sprintf("spelling lesson %q has no pool tags", l.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
