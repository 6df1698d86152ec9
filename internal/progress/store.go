package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/schema"
	"github.com/abhisek/kartuli/internal/store"
)

// Key is the key-value entry holding the progress blob.
const Key = "georgian-app-progress"

var blobSchema = &schema.Schema{
	Name: "progress-blob",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []string{"lessonId", "completed"},
			"properties": map[string]any{
				"lessonId":    map[string]any{"type": "string"},
				"completed":   map[string]any{"type": "boolean"},
				"score":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"completedAt": map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
}

// Store reads and writes progress records. Corrupt persisted data degrades
// to an empty collection; only key-value I/O failures are returned as errors.
type Store struct {
	kv  store.KV
	log *zap.Logger
}

// NewStore returns a Store over kv.
func NewStore(kv store.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log.Named("progress")}
}

// All returns every persisted record in stored order.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	return s.decode(raw), nil
}

// Summary reads all records and summarizes them against c.
func (s *Store) Summary(ctx context.Context, c *catalog.Catalog) (Summary, error) {
	records, err := s.All(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, c), nil
}

// ForLesson returns the record for lessonID, if any.
func (s *Store) ForLesson(ctx context.Context, lessonID string) (Record, bool, error) {
	records, err := s.All(ctx)
	if err != nil {
		return Record{}, false, err
	}
	for _, r := range records {
		if r.LessonID == lessonID {
			return r, true, nil
		}
	}
	return Record{}, false, nil
}

// Upsert replaces the record for r.LessonID, or appends it when absent.
// Any duplicate records for the same lesson are dropped.
func (s *Store) Upsert(ctx context.Context, r Record) error {
	records, err := s.All(ctx)
	if err != nil {
		return err
	}

	out := make([]Record, 0, len(records)+1)
	replaced := false
	for _, existing := range records {
		if existing.LessonID != r.LessonID {
			out = append(out, existing)
			continue
		}
		if !replaced {
			out = append(out, r)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, r)
	}

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(b)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// ClearAll removes the persisted blob.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func (s *Store) decode(raw string) []Record {
	if err := schema.Validate(blobSchema, []byte(raw)); err != nil {
		s.log.Warn("discarding unreadable progress data", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("discarding unreadable progress data", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil
	}
	return records
}

// HintKey is the key-value entry recording that the shortcut hint was dismissed.
const HintKey = "georgian-app-shortcut-hint-dismissed"

// Hints remembers whether the one-time keyboard-shortcut hint was dismissed.
type Hints struct {
	kv  store.KV
	log *zap.Logger
}

// NewHints returns a Hints over kv.
func NewHints(kv store.KV, log *zap.Logger) *Hints {
	return &Hints{kv: kv, log: log.Named("hints")}
}

// Dismissed reports whether the hint was dismissed. Read failures and
// unparsable values count as not dismissed.
func (h *Hints) Dismissed(ctx context.Context) bool {
	raw, ok, err := h.kv.Get(ctx, HintKey)
	if err != nil {
		h.log.Warn("read hint flag", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		h.log.Warn("discarding unreadable hint flag", zap.String("value", raw))
		return false
	}
	return v
}

// Dismiss records that the hint was dismissed.
func (h *Hints) Dismiss(ctx context.Context) error {
	if err := h.kv.Set(ctx, HintKey, "true"); err != nil {
		return fmt.Errorf("write hint flag: %w", err)
	}
	return nil
}
