package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 24-HeaderHeight-FooterHeight, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(2))
}

func TestRenderHeaderShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Home", "3/22 done", 80)
	assert.Contains(t, h, "Kartuli")
	assert.Contains(t, h, "Home")
	assert.Contains(t, h, "3/22 done")
}

func TestRenderFooterListsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}, {Key: "q", Description: "Quiz"}}, 80)
	assert.Contains(t, f, "Esc")
	assert.Contains(t, f, "Quiz")
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
}
