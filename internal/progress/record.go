// Package progress persists per-lesson completion records as a single JSON
// blob in a key-value store.
package progress

import "time"

// Record is the persisted completion state of one lesson.
type Record struct {
	LessonID    string `json:"lessonId"`
	Completed   bool   `json:"completed"`
	Score       *int   `json:"score,omitempty"`
	CompletedAt *int64 `json:"completedAt,omitempty"` // Unix milliseconds
}

// Completion returns a completed record with the given score and time.
func Completion(lessonID string, score int, at time.Time) Record {
	ms := at.UnixMilli()
	return Record{
		LessonID:    lessonID,
		Completed:   true,
		Score:       &score,
		CompletedAt: &ms,
	}
}

// ScoreValue returns the score and whether one was recorded.
func (r Record) ScoreValue() (int, bool) {
	if r.Score == nil {
		return 0, false
	}
	return *r.Score, true
}

// CompletedTime returns the completion time and whether one was recorded.
func (r Record) CompletedTime() (time.Time, bool) {
	if r.CompletedAt == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*r.CompletedAt), true
}
