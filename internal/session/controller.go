// Package session drives one lesson run: browsing cards, taking a quiz and
// recording completion. Every lesson type shares the same Controller; the
// per-type differences live in Kind.
package session

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/quiz"
)

// DefaultFeedbackDelay is how long an answered question stays on screen
// before the quiz advances.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// CompletionScore is the score recorded for finishing a deck.
const CompletionScore = 100

// Recorder persists completion records.
type Recorder interface {
	Upsert(ctx context.Context, r progress.Record) error
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Catalog         *catalog.Catalog // source of the spelling word pool
	Recorder        Recorder
	Logger          *zap.Logger
	Rand            *rand.Rand
	Now             func() time.Time
	FeedbackDelay   time.Duration
	SpellingSize    int
	GrammarQuizSize int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Rand == nil {
		o.Rand = quiz.NewRand()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.FeedbackDelay <= 0 {
		o.FeedbackDelay = DefaultFeedbackDelay
	}
	if o.SpellingSize <= 0 {
		o.SpellingSize = 10
	}
	if o.GrammarQuizSize <= 0 {
		o.GrammarQuizSize = 5
	}
	return o
}

// Feedback is returned for an accepted answer. The shell shows Result and,
// after Delay, calls Continue with RunID.
type Feedback struct {
	Result quiz.Result
	RunID  uuid.UUID
	Delay  time.Duration
}

// Controller owns the state of one lesson run. Its intent methods are the
// only mutators; each returns whether the intent was applied.
type Controller struct {
	lesson catalog.Lesson
	kind   Kind
	cards  []Card
	state  State
	opts   Options
	rng    *rand.Rand
	log    *zap.Logger
}

// New returns a controller for lesson. Spelling lessons start in the quiz.
func New(lesson catalog.Lesson, opts Options) *Controller {
	opts = opts.withDefaults()
	kind := KindFor(lesson.Type)
	c := &Controller{
		lesson: lesson,
		kind:   kind,
		cards:  kind.cards(lesson),
		opts:   opts,
		rng:    opts.Rand,
		log:    opts.Logger.Named("session").With(zap.String("lesson", lesson.ID)),
	}
	c.reset()
	return c
}

// Lesson returns the lesson being run.
func (c *Controller) Lesson() catalog.Lesson { return c.lesson }

// Kind returns the lesson's per-type behaviour.
func (c *Controller) Kind() Kind { return c.kind }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase() }

// Cards returns the browsable cards.
func (c *Controller) Cards() []Card { return c.cards }

// FeedbackDelay is the pause between an answer and Continue.
func (c *Controller) FeedbackDelay() time.Duration { return c.opts.FeedbackDelay }

func (c *Controller) reset() {
	c.state = Browsing{}
	if c.kind.QuizFirst {
		c.StartQuiz()
	}
}

// Next moves to the next card. On the last card it completes the lesson or
// starts the quiz, depending on the lesson type.
func (c *Controller) Next() bool {
	b, ok := c.state.(Browsing)
	if !ok {
		return false
	}
	if b.Index < len(c.cards)-1 {
		c.state = Browsing{Index: b.Index + 1, ShowAll: b.ShowAll}
		return true
	}
	switch c.kind.DeckEnd {
	case DeckEndComplete:
		c.completeLesson()
		return true
	case DeckEndQuiz:
		return c.StartQuiz()
	default:
		return false
	}
}

// Previous moves to the previous card. It does nothing on the first card.
func (c *Controller) Previous() bool {
	b, ok := c.state.(Browsing)
	if !ok || b.Index == 0 {
		return false
	}
	c.state = Browsing{Index: b.Index - 1, ShowAll: b.ShowAll}
	return true
}

// Flip turns the current card over.
func (c *Controller) Flip() bool {
	b, ok := c.state.(Browsing)
	if !ok || !c.kind.Flip {
		return false
	}
	b.Flipped = !b.Flipped
	c.state = b
	return true
}

// ToggleShowAll switches between one card at a time and the whole deck.
func (c *Controller) ToggleShowAll() bool {
	b, ok := c.state.(Browsing)
	if !ok || !c.kind.ShowAll {
		return false
	}
	b.ShowAll = !b.ShowAll
	c.state = b
	return true
}

// StartQuiz builds a fresh quiz from browsing. A quiz with no questions
// completes immediately with a full score.
func (c *Controller) StartQuiz() bool {
	if _, ok := c.state.(Browsing); !ok || !c.kind.HasQuiz {
		return false
	}
	q := c.kind.quiz(c.lesson, c)
	if q.Done() {
		c.finishQuiz(q)
		return true
	}
	run := QuizInProgress{Quiz: q, RunID: uuid.New()}
	c.state = run
	c.log.Debug("quiz started", zap.Stringer("run", run.RunID), zap.Int("questions", q.Len()))
	return true
}

// Select answers the current multiple-choice question.
func (c *Controller) Select(option string) (Feedback, bool) {
	return c.submit(quiz.MultipleChoice, option)
}

// SubmitText answers the current free-text question.
func (c *Controller) SubmitText(text string) (Feedback, bool) {
	return c.submit(quiz.FreeText, text)
}

func (c *Controller) submit(mode quiz.Mode, answer string) (Feedback, bool) {
	run, ok := c.state.(QuizInProgress)
	if !ok || run.Quiz.Mode() != mode {
		return Feedback{}, false
	}
	r, ok := run.Quiz.Submit(answer)
	if !ok {
		return Feedback{}, false
	}
	return Feedback{Result: r, RunID: run.RunID, Delay: c.opts.FeedbackDelay}, true
}

// Continue is the deferred continuation scheduled after an answer. It
// advances the quiz, or grades it after the last question. A continuation
// from an earlier run is ignored.
func (c *Controller) Continue(runID uuid.UUID) bool {
	run, ok := c.state.(QuizInProgress)
	if !ok || run.RunID != runID {
		c.log.Debug("dropping stale continuation", zap.Stringer("run", runID))
		return false
	}
	if !run.Quiz.Advance() {
		return false
	}
	if run.Quiz.Done() {
		c.finishQuiz(run.Quiz)
	}
	return true
}

// Restart returns a finished run to the first card. Spelling lessons start a
// new quiz instead. Persisted progress is kept.
func (c *Controller) Restart() bool {
	switch c.state.(type) {
	case QuizCompleted, LessonCompleted:
		c.reset()
		return true
	default:
		return false
	}
}

func (c *Controller) finishQuiz(q *quiz.Quiz) {
	out := q.Outcome()
	c.state = QuizCompleted{Outcome: out}
	c.record(out.Score)
}

func (c *Controller) completeLesson() {
	c.state = LessonCompleted{Score: CompletionScore}
	c.record(CompletionScore)
}

func (c *Controller) record(score int) {
	c.log.Info("lesson completed", zap.Int("score", score))
	if c.opts.Recorder == nil {
		return
	}
	rec := progress.Completion(c.lesson.ID, score, c.opts.Now())
	if err := c.opts.Recorder.Upsert(context.Background(), rec); err != nil {
		c.log.Error("record progress", zap.Error(err))
	}
}
