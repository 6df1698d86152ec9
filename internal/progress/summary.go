package progress

import (
	"cmp"
	"slices"

	"github.com/abhisek/kartuli/internal/catalog"
)

// Group is one dashboard category: one or more lesson types counted together.
type Group struct {
	Label string
	Types []catalog.Type
}

// Groups returns the dashboard categories in display order. Spelling is
// counted with the alphabet.
func Groups() []Group {
	return []Group{
		{Label: "Alphabet", Types: []catalog.Type{catalog.TypeAlphabet, catalog.TypeSpelling}},
		{Label: "Flashcards", Types: []catalog.Type{catalog.TypeFlashcards}},
		{Label: "Phrases", Types: []catalog.Type{catalog.TypePhrases}},
		{Label: "Grammar", Types: []catalog.Type{catalog.TypeGrammar}},
	}
}

// Tally is a completed/total count with its rounded percentage.
type Tally struct {
	Label     string
	Completed int
	Total     int
	Percent   int
}

// Summary aggregates progress against the catalog.
type Summary struct {
	Overall      Tally
	Groups       []Tally
	AverageScore int // over completed lessons with a score; 0 when none
	Scored       int
	Recent       []Record // completed records, newest first
}

// Summarize computes completion statistics for records. Records whose lesson
// is not in the catalog are ignored.
func Summarize(records []Record, c *catalog.Catalog) Summary {
	done := make(map[string]Record, len(records))
	for _, r := range records {
		if _, ok := c.ByID(r.LessonID); ok && r.Completed {
			done[r.LessonID] = r
		}
	}

	var s Summary
	for _, g := range Groups() {
		t := Tally{Label: g.Label}
		for _, typ := range g.Types {
			for _, l := range c.ByType(typ) {
				t.Total++
				if _, ok := done[l.ID]; ok {
					t.Completed++
				}
			}
		}
		t.Percent = Percent(t.Completed, t.Total)
		s.Groups = append(s.Groups, t)
	}

	s.Overall = Tally{Label: "Overall", Completed: len(done), Total: c.Len()}
	s.Overall.Percent = Percent(s.Overall.Completed, s.Overall.Total)

	sum := 0
	for _, r := range done {
		if score, ok := r.ScoreValue(); ok {
			sum += score
			s.Scored++
		}
		s.Recent = append(s.Recent, r)
	}
	if s.Scored > 0 {
		s.AverageScore = Percent(sum, s.Scored*100)
	}

	slices.SortFunc(s.Recent, func(a, b Record) int {
		ta, _ := a.CompletedTime()
		tb, _ := b.CompletedTime()
		if c := tb.Compare(ta); c != 0 {
			return c
		}
		return cmp.Compare(a.LessonID, b.LessonID)
	})
	return s
}

// Percent returns round-half-up(100*n/d), or 0 when d is 0.
func Percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return (200*n + d) / (2 * d)
}
