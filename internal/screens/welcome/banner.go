package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/common-nighthawk/go-figure"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

const (
	bannerText    = "KARTULI"
	bannerCompact = "K A R T U L I"
	bannerFont    = "standard"
)

// bannerLines renders the figlet banner once; the font is embedded in go-figure.
var bannerLines = figure.NewFigure(bannerText, bannerFont, true).Slicify()

// BannerWidth is the column width of the full banner.
func BannerWidth() int {
	w := 0
	for _, l := range bannerLines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// RenderBanner returns the KARTULI banner styled in the primary color,
// falling back to spaced letters when the terminal is too narrow.
func RenderBanner(width int) string {
	if width < BannerWidth()+2 {
		return theme.Banner.Render(bannerCompact)
	}
	return theme.Banner.Render(strings.Join(trimBlank(bannerLines), "\n"))
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}
