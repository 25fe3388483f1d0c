package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
)

// cardWidth is the fixed outer width of one movie card in the grid.
const cardWidth = 32

// cardLines is the number of content lines inside a card.
const cardLines = 4

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// formatRating renders a 0-10 vote average with one decimal place.
func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

func renderCard(m guide.Movie, selected bool, width int) string {
	inner := width - 4 // border + padding

	head := cardTimeStyle.Render(m.TimeLabel()) + "  " + cardRatingStyle.Render("★ "+formatRating(m.Rating))
	title := cardTitleStyle.Render(truncateStr(m.Title, inner))
	meta := cardChannelStyle.Render(truncateStr(m.Channel, inner-len(string(m.Genre))-3)) +
		cardGenreStyle.Render(" · "+string(m.Genre))

	link := ""
	if m.IMDBID != "" {
		link = cardLinkStyle.Render("IMDb " + m.IMDBID)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, head, title, meta, link)

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(width - 2).Height(cardLines).Render(content)
}

// gridColumns returns how many fixed-width cards fit side by side.
func gridColumns(width int) int {
	cols := width / cardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// renderGrid lays movies out in rows of fixed-width cards, scrolled so the
// cursor's row is always visible within height terminal lines.
func renderGrid(movies []guide.Movie, cursor, width, height int) string {
	if len(movies) == 0 {
		return lipglossCenter("Brak filmow spelniajacych kryteria", width, height)
	}

	cols := gridColumns(width)
	rowHeight := cardLines + 2 // borders
	visibleRows := height / rowHeight
	if visibleRows < 1 {
		visibleRows = 1
	}

	cursorRow := cursor / cols
	startRow := 0
	if cursorRow >= visibleRows {
		startRow = cursorRow - visibleRows + 1
	}

	totalRows := (len(movies) + cols - 1) / cols
	endRow := startRow + visibleRows
	if endRow > totalRows {
		endRow = totalRows
	}

	var rows []string
	for r := startRow; r < endRow; r++ {
		var cards []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(movies) {
				break
			}
			cards = append(cards, renderCard(movies[i], i == cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n")
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
