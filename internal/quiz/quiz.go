// Package quiz turns lesson items into a graded question sequence.
package quiz

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/kartuli/internal/catalog"
)

// OptionCount is the number of choices per multiple-choice question when
// enough distinct answers exist.
const OptionCount = 4

// Mode selects how answers are collected and judged.
type Mode int

const (
	MultipleChoice Mode = iota // pick one of the generated options; exact match
	FreeText                   // type the answer; trimmed, case-insensitive match
)

// Question is one generated question. Options is nil in FreeText mode.
type Question struct {
	Item    catalog.Item
	Answer  string
	Options []string
}

// Result records one submitted answer.
type Result struct {
	Prompt        string
	Phonetic      string
	CorrectAnswer string
	UserAnswer    string
	Correct       bool
}

// Outcome is the final grade of a quiz run.
type Outcome struct {
	Score   int
	Correct int
	Total   int
	Results []Result
}

// Quiz is one run over a fixed question list. Options are generated once in
// New and never regenerated.
type Quiz struct {
	mode      Mode
	questions []Question
	index     int
	locked    bool
	results   []Result
}

type config struct {
	rng    *rand.Rand
	mode   Mode
	pool   []string
	answer func(catalog.Item) string
}

// Option configures New.
type Option func(*config)

// WithRand sets the random source. Tests pass a seeded generator.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithMode sets the answer mode. The default is MultipleChoice.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithDistractorPool draws distractors from pool instead of from the other
// questions' answers.
func WithDistractorPool(pool []string) Option {
	return func(c *config) { c.pool = pool }
}

// WithAnswer selects which item field is the expected answer. The default is
// Item.Answer.
func WithAnswer(f func(catalog.Item) string) Option {
	return func(c *config) { c.answer = f }
}

// New builds a quiz over items in the given order.
func New(items []catalog.Item, opts ...Option) *Quiz {
	cfg := config{
		mode:   MultipleChoice,
		answer: func(it catalog.Item) string { return it.Answer },
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand()
	}

	answers := make([]string, len(items))
	for i, it := range items {
		answers[i] = cfg.answer(it)
	}

	q := &Quiz{mode: cfg.mode, questions: make([]Question, len(items))}
	for i, it := range items {
		q.questions[i] = Question{Item: it, Answer: answers[i]}
		if cfg.mode != MultipleChoice {
			continue
		}
		candidates := cfg.pool
		if candidates == nil {
			candidates = slices.Concat(answers[:i], answers[i+1:])
		}
		q.questions[i].Options = buildOptions(answers[i], candidates, cfg.rng)
	}
	return q
}

// buildOptions returns the correct answer plus up to OptionCount-1 distinct
// distractors sampled from candidates, shuffled together.
func buildOptions(correct string, candidates []string, rng *rand.Rand) []string {
	seen := map[string]bool{correct: true}
	var distinct []string
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}
	opts := append([]string{correct}, Sample(distinct, OptionCount-1, rng)...)
	return Shuffle(opts, rng)
}

// Mode returns the answer mode.
func (q *Quiz) Mode() Mode { return q.mode }

// Len returns the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Index returns the zero-based index of the current question.
func (q *Quiz) Index() int { return q.index }

// Done reports whether every question has been answered and advanced past.
// A quiz with no questions is done from the start.
func (q *Quiz) Done() bool { return q.index >= len(q.questions) }

// Locked reports whether the current question has been answered and is
// waiting to advance.
func (q *Quiz) Locked() bool { return q.locked }

// Current returns the current question.
func (q *Quiz) Current() (Question, bool) {
	if q.Done() {
		return Question{}, false
	}
	cur := q.questions[q.index]
	cur.Options = slices.Clone(cur.Options)
	return cur, true
}

// Question returns question i.
func (q *Quiz) Question(i int) (Question, bool) {
	if i < 0 || i >= len(q.questions) {
		return Question{}, false
	}
	cur := q.questions[i]
	cur.Options = slices.Clone(cur.Options)
	return cur, true
}

// Submit grades answer against the current question and locks it. It returns
// false without recording anything when the question is already locked or the
// quiz is done.
func (q *Quiz) Submit(answer string) (Result, bool) {
	if q.Done() || q.locked {
		return Result{}, false
	}
	cur := q.questions[q.index]

	var correct bool
	switch q.mode {
	case FreeText:
		answer = strings.TrimSpace(answer)
		correct = CheckText(answer, cur.Answer)
	default:
		correct = answer == cur.Answer
	}

	r := Result{
		Prompt:        cur.Item.Prompt,
		Phonetic:      cur.Item.Phonetic,
		CorrectAnswer: cur.Answer,
		UserAnswer:    answer,
		Correct:       correct,
	}
	q.results = append(q.results, r)
	q.locked = true
	return r, true
}

// LastResult returns the most recent result while the question is locked.
func (q *Quiz) LastResult() (Result, bool) {
	if !q.locked || len(q.results) == 0 {
		return Result{}, false
	}
	return q.results[len(q.results)-1], true
}

// Advance unlocks and moves past an answered question. It returns false when
// the current question has not been answered.
func (q *Quiz) Advance() bool {
	if !q.locked {
		return false
	}
	q.locked = false
	q.index++
	return true
}

// Outcome grades the answers recorded so far against the full question count.
func (q *Quiz) Outcome() Outcome {
	correct := 0
	for _, r := range q.results {
		if r.Correct {
			correct++
		}
	}
	return Outcome{
		Score:   Score(correct, len(q.questions)),
		Correct: correct,
		Total:   len(q.questions),
		Results: slices.Clone(q.results),
	}
}

// Score returns round-half-up(100*correct/n). An empty quiz scores 100.
func Score(correct, n int) int {
	if n <= 0 {
		return 100
	}
	return (200*correct + n) / (2 * n)
}

// CheckText compares typed input with the expected answer, ignoring
// surrounding whitespace and case.
func CheckText(input, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(expected))
}
