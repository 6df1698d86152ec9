package session

import (
	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/quiz"
)

// Card is one browsable unit. Vocabulary cards fill Prompt, Phonetic and
// Answer; grammar cards fill Title, Body and Examples.
type Card struct {
	Prompt   string
	Phonetic string
	Answer   string
	Category string

	Title    string
	Body     string
	Examples []catalog.Item
}

// DeckEnd is what "next" does on the last card.
type DeckEnd int

const (
	DeckEndStay     DeckEnd = iota // nothing; the learner starts the quiz explicitly
	DeckEndComplete                // the lesson is complete with a full score
	DeckEndQuiz                    // the quiz starts
)

// Kind is the per-type behaviour of a lesson.
type Kind struct {
	Type      catalog.Type
	DeckEnd   DeckEnd
	Flip      bool   // cards have a hidden back
	ShowAll   bool   // the whole deck can be listed at once
	QuizFirst bool   // no browse phase; the run starts in the quiz
	HasQuiz   bool   // a quiz can be started
	Ask       string // question shown above each quiz prompt

	cards func(catalog.Lesson) []Card
	quiz  func(catalog.Lesson, *Controller) *quiz.Quiz
}

// KindFor returns the behaviour for lesson type t.
func KindFor(t catalog.Type) Kind {
	switch t {
	case catalog.TypeAlphabet:
		return Kind{
			Type:    t,
			DeckEnd: DeckEndComplete,
			Flip:    true,
			ShowAll: true,
			HasQuiz: true,
			Ask:     "What is the pronunciation of this letter?",
			cards:   itemCards,
			quiz: func(l catalog.Lesson, c *Controller) *quiz.Quiz {
				return quiz.New(l.Items,
					quiz.WithRand(c.rng),
					quiz.WithAnswer(phonetic),
				)
			},
		}
	case catalog.TypeFlashcards:
		return Kind{
			Type:    t,
			DeckEnd: DeckEndComplete,
			Flip:    true,
			HasQuiz: true,
			Ask:     "What does this word mean?",
			cards:   itemCards,
			quiz: func(l catalog.Lesson, c *Controller) *quiz.Quiz {
				return quiz.New(l.Items, quiz.WithRand(c.rng))
			},
		}
	case catalog.TypePhrases:
		return Kind{
			Type:    t,
			DeckEnd: DeckEndStay,
			ShowAll: true,
			HasQuiz: true,
			Ask:     "What does this Georgian phrase mean?",
			cards:   itemCards,
			quiz: func(l catalog.Lesson, c *Controller) *quiz.Quiz {
				return quiz.New(l.Items, quiz.WithRand(c.rng))
			},
		}
	case catalog.TypeGrammar:
		return Kind{
			Type:    t,
			DeckEnd: DeckEndQuiz,
			HasQuiz: true,
			Ask:     "What does this sentence mean?",
			cards:   ruleCards,
			quiz: func(l catalog.Lesson, c *Controller) *quiz.Quiz {
				examples := l.Examples()
				pool := make([]string, len(examples))
				for i, e := range examples {
					pool[i] = e.Answer
				}
				return quiz.New(quiz.Sample(examples, c.opts.GrammarQuizSize, c.rng),
					quiz.WithRand(c.rng),
					quiz.WithDistractorPool(pool),
				)
			},
		}
	case catalog.TypeSpelling:
		return Kind{
			Type:      t,
			QuizFirst: true,
			HasQuiz:   true,
			Ask:       "Type the phonetic transcription of this word.",
			cards:     func(catalog.Lesson) []Card { return nil },
			quiz: func(l catalog.Lesson, c *Controller) *quiz.Quiz {
				var pool []catalog.Item
				if c.opts.Catalog != nil {
					pool = c.opts.Catalog.Pool(l.PoolTags...)
				}
				return quiz.New(quiz.Sample(pool, c.opts.SpellingSize, c.rng),
					quiz.WithRand(c.rng),
					quiz.WithMode(quiz.FreeText),
					quiz.WithAnswer(phonetic),
				)
			},
		}
	default:
		return Kind{
			Type:  t,
			cards: itemCards,
		}
	}
}

func phonetic(it catalog.Item) string { return it.Phonetic }

func itemCards(l catalog.Lesson) []Card {
	cards := make([]Card, len(l.Items))
	for i, it := range l.Items {
		cards[i] = Card{
			Prompt:   it.Prompt,
			Phonetic: it.Phonetic,
			Answer:   it.Answer,
			Category: it.Category,
		}
	}
	return cards
}

func ruleCards(l catalog.Lesson) []Card {
	cards := make([]Card, len(l.Rules))
	for i, r := range l.Rules {
		cards[i] = Card{
			Title:    r.Name,
			Body:     r.Explanation,
			Examples: r.Examples,
		}
	}
	return cards
}
