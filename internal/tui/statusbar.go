package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(movieCount int, startHour int, minRating float64, genreLabel string, warnCount, width int, searching, scanning bool) string {
	left := fmt.Sprintf(" %d filmow · od %02d:00 · ★ ≥ %s", movieCount, startHour, formatRating(minRating))
	if genreLabel != "Wszystkie" {
		left += " · " + genreLabel
	}
	if warnCount > 0 {
		left += fmt.Sprintf(" · %d nieudanych wyszukiwan", warnCount)
	}
	if scanning {
		left += " (skanuje...)"
	}

	right := " -/+ rating  [/] godzina  / szukaj  g gatunek  ? pomoc  q wyjdz "
	if searching {
		right = " esc anuluj  enter szukaj "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
