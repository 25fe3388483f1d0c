package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/genre"
)

// genreBar is the filter strip of genre tabs above the grid. No active
// genres means all genres are shown.
type genreBar struct {
	genres     []genre.Genre
	active     map[genre.Genre]bool
	filterMode bool
	cursor     int
}

func newGenreBar() genreBar {
	return genreBar{
		genres: genre.All(),
		active: make(map[genre.Genre]bool),
	}
}

func (g *genreBar) toggle(gen genre.Genre) {
	if g.active[gen] {
		delete(g.active, gen)
	} else {
		g.active[gen] = true
	}
}

func (g *genreBar) toggleCurrent() {
	if g.cursor < len(g.genres) {
		g.toggle(g.genres[g.cursor])
	}
}

// matches reports whether a movie's genre passes the filter.
func (g *genreBar) matches(gen genre.Genre) bool {
	if len(g.active) == 0 {
		return true
	}
	return g.active[gen]
}

func (g *genreBar) activeLabel() string {
	if len(g.active) == 0 {
		return "Wszystkie"
	}
	var parts []string
	for _, gen := range g.genres {
		if g.active[gen] {
			parts = append(parts, string(gen))
		}
	}
	return strings.Join(parts, ", ")
}

func (g *genreBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	if len(g.active) == 0 {
		parts = append(parts, tabActiveStyle.Render("Wszystkie"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("Wszystkie"))
	}

	for i, gen := range g.genres {
		style := tabInactiveStyle
		if g.active[gen] {
			style = tabActiveStyle
		}
		label := string(gen)
		if g.filterMode && i == g.cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
