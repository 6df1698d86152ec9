package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/quiz"
	"github.com/abhisek/kartuli/internal/session"
	"github.com/abhisek/kartuli/internal/ui/components"
	"github.com/abhisek/kartuli/internal/ui/layout"
	"github.com/abhisek/kartuli/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	v := s.ctrl.View()

	var body string
	switch v.Phase {
	case session.PhaseBrowsing:
		if v.ShowAll {
			body = renderDeck(v, height)
		} else {
			body = renderCard(v, cw)
		}
	case session.PhaseQuiz:
		body = s.renderQuestion(v, cw)
	case session.PhaseQuizCompleted:
		body = renderOutcome(v, cw, height)
	case session.PhaseLessonCompleted:
		body = renderCompleted(v, cw)
	}

	return layout.Center(body, width, height)
}

func renderCard(v session.View, cw int) string {
	if v.Total == 0 {
		return components.Card(theme.Hint.Render("This lesson has no cards."), cw)
	}

	pos := theme.Subtitle.Render(fmt.Sprintf("%d / %d", v.Index+1, v.Total))
	bar := components.NewProgressBar("", (v.Index+1)*100/v.Total, false, cw).View()

	c := v.Card
	var lines []string
	if c.Title != "" {
		lines = append(lines, theme.Title.Render(c.Title), "", layout.Wrap(c.Body, cw-8))
		if len(c.Examples) > 0 {
			lines = append(lines, "")
			for _, ex := range c.Examples {
				lines = append(lines, theme.Script.Render(ex.Prompt)+"  "+theme.Phonetic.Render(ex.Phonetic))
				lines = append(lines, theme.Hint.Render(ex.Answer))
			}
		}
	} else {
		lines = append(lines, theme.Script.Render(c.Prompt))
		if v.Kind.Flip && !v.Flipped {
			lines = append(lines, "", theme.Hint.Render("press space to reveal"))
		} else {
			lines = append(lines, "", theme.Phonetic.Render(c.Phonetic), theme.Body.Render(c.Answer))
		}
		if c.Category != "" {
			lines = append(lines, "", theme.Hint.Render(c.Category))
		}
	}

	footer := ""
	if v.Index == v.Total-1 {
		switch v.Kind.DeckEnd {
		case session.DeckEndComplete:
			footer = theme.Hint.Render("→ to finish the lesson")
		case session.DeckEndQuiz:
			footer = theme.Hint.Render("→ to test yourself")
		case session.DeckEndStay:
			if v.Kind.HasQuiz {
				footer = theme.Hint.Render("press q to test yourself")
			}
		}
	}

	return strings.Join([]string{pos, bar, "", components.HighlightCard(strings.Join(lines, "\n"), cw), footer}, "\n")
}

func renderDeck(v session.View, height int) string {
	promptW, phoneticW := 0, 0
	for _, c := range v.Cards {
		promptW = max(promptW, lipgloss.Width(c.Prompt))
		phoneticW = max(phoneticW, lipgloss.Width(c.Phonetic))
	}

	rows := []string{theme.Title.Render(v.Lesson.Title), ""}
	limit := max(height-4, 1)
	for i, c := range v.Cards {
		if i >= limit {
			rows = append(rows, theme.Hint.Render(fmt.Sprintf("… %d more", len(v.Cards)-i)))
			break
		}
		row := theme.Script.Render(pad(c.Prompt, promptW+2)) +
			theme.Phonetic.Render(pad(c.Phonetic, phoneticW+2)) +
			theme.Body.Render(c.Answer)
		if i == v.Index {
			row = theme.Selected.Render("▸ ") + row
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func (s *LessonScreen) renderQuestion(v session.View, cw int) string {
	header := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", v.QuestionIndex+1, v.QuestionTotal))
	bar := components.NewProgressBar("", v.QuestionIndex*100/max(v.QuestionTotal, 1), false, cw).View()
	prompt := components.HighlightCard(
		theme.Hint.Render(v.Kind.Ask)+"\n\n"+theme.Script.Render(v.Question.Item.Prompt), cw)

	var answer string
	if v.Mode == quiz.FreeText {
		answer = s.input.View()
	} else {
		answer = s.choice.View()
	}

	parts := []string{header, bar, "", prompt, "", answer}
	if v.Locked {
		parts = append(parts, "", renderFeedback(v.Last))
	}
	return strings.Join(parts, "\n")
}

func renderFeedback(r quiz.Result) string {
	if r.Correct {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Not quite.") + " " +
		theme.Body.Render("The answer is "+r.CorrectAnswer)
}

func renderOutcome(v session.View, cw, height int) string {
	score := theme.Title.Render(fmt.Sprintf("Score: %d%%", v.Score))
	tally := theme.Subtitle.Render(fmt.Sprintf("%d of %d correct", v.Correct, v.QuestionTotal))

	rows := []string{score, tally, ""}
	limit := max(height-8, 1)
	for i, r := range v.Results {
		if i >= limit {
			rows = append(rows, theme.Hint.Render(fmt.Sprintf("… %d more", len(v.Results)-i)))
			break
		}
		if r.Correct {
			rows = append(rows, theme.Correct.Render("✓ ")+theme.Body.Render(r.Prompt)+"  "+theme.Hint.Render(r.CorrectAnswer))
		} else {
			rows = append(rows, theme.Incorrect.Render("✗ ")+theme.Body.Render(r.Prompt)+"  "+
				theme.Hint.Render(fmt.Sprintf("%s (you said %q)", r.CorrectAnswer, r.UserAnswer)))
		}
	}
	rows = append(rows, "", theme.Hint.Render("r to try again · enter to finish"))
	return components.Card(strings.Join(rows, "\n"), cw)
}

func renderCompleted(v session.View, cw int) string {
	return components.Card(strings.Join([]string{
		theme.Title.Render("Lesson complete!"),
		"",
		theme.Body.Render(fmt.Sprintf("%s · score %d%%", v.Lesson.Title, v.Score)),
		"",
		theme.Hint.Render("r to go through it again · enter to finish"),
	}, "\n"), cw)
}
