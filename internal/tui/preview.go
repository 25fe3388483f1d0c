package tui

import (
	"fmt"
	"strings"

	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/browser"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
)

// renderPreview shows the selected movie's full details under the grid.
func renderPreview(m *guide.Movie, width int) string {
	if m == nil {
		return ""
	}

	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	title := previewTitleStyle.Render(truncateStr(m.Title, inner))
	meta := previewBodyStyle.Render(fmt.Sprintf(
		"%s · %s · ★ %s · %s",
		m.TimeLabel(), m.Channel, formatRating(m.Rating), m.Genre,
	))

	var extra []string
	if m.IMDBID != "" {
		extra = append(extra, helpDimStyle.Render(truncateStr(browser.IMDBURL(m.IMDBID), inner)))
	}
	if m.Poster != "" {
		extra = append(extra, helpDimStyle.Render(truncateStr("Plakat: "+m.Poster, inner)))
	}

	lines := append([]string{title, meta}, extra...)
	content := strings.Join(lines, "\n")

	return previewPaneStyle.Width(width - 2).Render(content)
}
