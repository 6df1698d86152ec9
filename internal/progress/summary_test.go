package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kartuli/internal/catalog"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 8, 38},
		{1, 8, 13},
		{4, 4, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.n, tt.d); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	c := catalog.Default()
	records := []Record{
		Completion("alphabet-basics", 100, at),
		Completion("spelling-bee-1", 70, at.Add(2*time.Hour)),
		Completion("grammar-basics", 50, at.Add(time.Hour)),
		{LessonID: "phrases-food", Completed: false},
		Completion("retired-lesson", 10, at),
	}

	s := Summarize(records, c)

	assert.Equal(t, Tally{Label: "Overall", Completed: 3, Total: 22, Percent: 14}, s.Overall)
	require.Len(t, s.Groups, 4)
	assert.Equal(t, Tally{Label: "Alphabet", Completed: 2, Total: 4, Percent: 50}, s.Groups[0])
	assert.Equal(t, Tally{Label: "Flashcards", Completed: 0, Total: 10, Percent: 0}, s.Groups[1])
	assert.Equal(t, Tally{Label: "Phrases", Completed: 0, Total: 4, Percent: 0}, s.Groups[2])
	assert.Equal(t, Tally{Label: "Grammar", Completed: 1, Total: 4, Percent: 25}, s.Groups[3])

	assert.Equal(t, 3, s.Scored)
	assert.Equal(t, 73, s.AverageScore)

	require.Len(t, s.Recent, 3)
	assert.Equal(t, "spelling-bee-1", s.Recent[0].LessonID)
	assert.Equal(t, "grammar-basics", s.Recent[1].LessonID)
	assert.Equal(t, "alphabet-basics", s.Recent[2].LessonID)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, catalog.Default())
	assert.Equal(t, 0, s.Overall.Completed)
	assert.Equal(t, 0, s.AverageScore)
	assert.Empty(t, s.Recent)
}

func TestStoreSummary(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Upsert(ctx, Completion("flashcards-verbs", 90, at)))

	sum, err := s.Summary(ctx, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Overall.Completed)
	assert.Equal(t, 90, sum.AverageScore)
	require.Len(t, sum.Recent, 1)
	assert.Equal(t, "flashcards-verbs", sum.Recent[0].LessonID)
}
