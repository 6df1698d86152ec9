package lesson

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
)

// feedbackDoneMsg fires when the feedback pause after an answer is over.
type feedbackDoneMsg struct {
	runID uuid.UUID
}

func continueAfter(d time.Duration, runID uuid.UUID) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackDoneMsg{runID: runID}
	})
}
