package session

import (
	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/quiz"
)

// View is everything a renderer needs for the current state.
type View struct {
	Lesson catalog.Lesson
	Kind   Kind
	Phase  Phase

	// Browsing
	Index   int
	Total   int
	Card    Card
	Cards   []Card // set when ShowAll is on
	Flipped bool
	ShowAll bool

	// Quiz
	Question      quiz.Question
	QuestionIndex int
	QuestionTotal int
	Mode          quiz.Mode
	Locked        bool
	Last          quiz.Result

	// Completed
	Score   int
	Correct int
	Results []quiz.Result
}

// View returns render data for the current state.
func (c *Controller) View() View {
	v := View{
		Lesson: c.lesson,
		Kind:   c.kind,
		Phase:  c.state.Phase(),
		Total:  len(c.cards),
	}

	switch s := c.state.(type) {
	case Browsing:
		v.Index = s.Index
		v.Flipped = s.Flipped
		v.ShowAll = s.ShowAll
		if s.Index < len(c.cards) {
			v.Card = c.cards[s.Index]
		}
		if s.ShowAll {
			v.Cards = c.cards
		}
	case QuizInProgress:
		v.Question, _ = s.Quiz.Current()
		v.QuestionIndex = s.Quiz.Index()
		v.QuestionTotal = s.Quiz.Len()
		v.Mode = s.Quiz.Mode()
		v.Locked = s.Quiz.Locked()
		v.Last, _ = s.Quiz.LastResult()
	case QuizCompleted:
		v.Score = s.Outcome.Score
		v.Correct = s.Outcome.Correct
		v.QuestionTotal = s.Outcome.Total
		v.Results = s.Outcome.Results
	case LessonCompleted:
		v.Score = s.Score
	}
	return v
}
