package catalog

import (
	"fmt"
	"slices"
)

// Type is a lesson type. Each type has its own session behaviour.
type Type string

const (
	TypeAlphabet   Type = "alphabet"
	TypeSpelling   Type = "spelling"
	TypePhrases    Type = "phrases"
	TypeGrammar    Type = "grammar"
	TypeFlashcards Type = "flashcards"
)

// AllTypes returns all lesson types in display order.
func AllTypes() []Type {
	return []Type{
		TypeAlphabet,
		TypeSpelling,
		TypePhrases,
		TypeGrammar,
		TypeFlashcards,
	}
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !slices.Contains(AllTypes(), t) {
		return "", fmt.Errorf("unknown lesson type %q", s)
	}
	return t, nil
}

// DisplayName returns a human-readable name for a lesson type.
func (t Type) DisplayName() string {
	switch t {
	case TypeAlphabet:
		return "Alphabet"
	case TypeSpelling:
		return "Spelling Bee"
	case TypePhrases:
		return "Phrases"
	case TypeGrammar:
		return "Grammar"
	case TypeFlashcards:
		return "Flashcards"
	default:
		return string(t)
	}
}

// Item is one vocabulary unit: Georgian prompt, phonetic transcription and
// English answer.
type Item struct {
	Prompt   string `json:"prompt"`
	Phonetic string `json:"phonetic"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// Rule is a grammar rule with worked examples.
type Rule struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
	Examples    []Item `json:"examples"`
}

// Lesson is an immutable unit of learning content. Grammar lessons use Rules;
// every other type uses Items.
type Lesson struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        Type     `json:"type"`
	Order       int      `json:"order"`
	Items       []Item   `json:"items,omitempty"`
	Rules       []Rule   `json:"rules,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// PoolTags names the vocabulary tags a spelling lesson draws its words from.
	PoolTags []string `json:"poolTags,omitempty"`
}

// HasTag reports whether the lesson carries tag.
func (l Lesson) HasTag(tag string) bool {
	return slices.Contains(l.Tags, tag)
}

// Examples returns every example across the lesson's rules, in rule order.
func (l Lesson) Examples() []Item {
	var out []Item
	for _, r := range l.Rules {
		out = append(out, r.Examples...)
	}
	return out
}

// Size returns the number of browsable units: rules for grammar, items otherwise.
func (l Lesson) Size() int {
	if l.Type == TypeGrammar {
		return len(l.Rules)
	}
	return len(l.Items)
}
