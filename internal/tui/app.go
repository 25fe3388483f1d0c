// Package tui renders the movie gallery: a card grid of tonight's films
// with adjustable rating and start-hour thresholds.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/browser"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/guide"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeGenre
	modeHelp
)

type App struct {
	scanner *guide.Scanner

	// movies is the full scan result, sorted by rating descending.
	// Threshold, genre and search filters are applied on top of it.
	movies []guide.Movie
	cursor int
	mode   mode

	width  int
	height int

	minRating float64
	startHour int

	searchInput textinput.Model
	spinner     spinner.Model
	genreBar    genreBar

	scanning    bool
	currentDate string
	err         error
	warnings    []error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Scanner   *guide.Scanner
	StartHour int
	MinRating float64
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Szukaj filmu..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		scanner:     opts.Scanner,
		startHour:   opts.StartHour,
		minRating:   opts.MinRating,
		genreBar:    newGenreBar(),
		searchInput: ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	a.scanning = true
	return tea.Batch(a.scanCmd(), a.spinner.Tick)
}

// scanCmd captures the current hour threshold into the closure; the scan
// itself runs in the background while the spinner ticks.
func (a *App) scanCmd() tea.Cmd {
	s := a.scanner
	hour := a.startHour
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		result, err := s.Scan(ctx, hour)
		return scanDoneMsg{result: result, err: err}
	}
}

func openIMDBCmd(imdbID string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenIMDB(imdbID); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

// visible applies the rating threshold, genre filter and title search to the
// scanned movies. Order is preserved, so the result stays rating-sorted.
func (a *App) visible() []guide.Movie {
	search := strings.ToLower(a.searchInput.Value())

	var out []guide.Movie
	for _, m := range a.movies {
		if m.Rating < a.minRating {
			continue
		}
		if !a.genreBar.matches(m.Genre) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (a *App) clampCursor(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case scanDoneMsg:
		a.scanning = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.movies = msg.result.Movies
		a.warnings = msg.result.Errors
		a.clampCursor(len(a.visible()))
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.scanning {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeGenre:
		return a.handleGenreKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	visible := a.visible()
	cols := gridColumns(a.gridWidth())

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "l", "right":
		if a.cursor < len(visible)-1 {
			a.cursor++
		}
		return a, nil
	case "h", "left":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "j", "down":
		if a.cursor+cols < len(visible) {
			a.cursor += cols
		}
		return a, nil
	case "k", "up":
		if a.cursor-cols >= 0 {
			a.cursor -= cols
		}
		return a, nil
	case "o", "enter":
		if len(visible) > 0 && a.cursor < len(visible) {
			if id := visible[a.cursor].IMDBID; id != "" {
				return a, openIMDBCmd(id)
			}
		}
		return a, nil
	case "+", "=":
		if a.minRating < 10 {
			a.minRating += 0.5
			a.clampCursor(len(a.visible()))
		}
		return a, nil
	case "-":
		if a.minRating > 0 {
			a.minRating -= 0.5
			a.clampCursor(len(a.visible()))
		}
		return a, nil
	case "]":
		if a.startHour < 23 && !a.scanning {
			a.startHour++
			return a.rescan()
		}
		return a, nil
	case "[":
		if a.startHour > 12 && !a.scanning {
			a.startHour--
			return a.rescan()
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "g":
		a.mode = modeGenre
		a.genreBar.filterMode = true
		return a, nil
	case "r":
		if !a.scanning {
			return a.rescan()
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

// rescan re-runs the whole pipeline with the current hour threshold. The
// metadata cache makes repeat scans cheap.
func (a *App) rescan() (tea.Model, tea.Cmd) {
	a.scanning = true
	a.cursor = 0
	return a, tea.Batch(a.scanCmd(), a.spinner.Tick)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.clampCursor(len(a.visible()))
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		a.clampCursor(len(a.visible()))
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleGenreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "g":
		a.mode = modeNormal
		a.genreBar.filterMode = false
		return a, nil
	case "left", "h":
		if a.genreBar.cursor > 0 {
			a.genreBar.cursor--
		}
		return a, nil
	case "right", "l":
		if a.genreBar.cursor < len(a.genreBar.genres)-1 {
			a.genreBar.cursor++
		}
		return a, nil
	case " ", "enter":
		a.genreBar.toggleCurrent()
		a.cursor = 0
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.genreBar.genres) {
			a.genreBar.toggle(a.genreBar.genres[idx])
			a.cursor = 0
		}
		return a, nil
	}
	return a, nil
}

func (a *App) gridWidth() int {
	if a.width == 0 {
		return 4 * cardWidth
	}
	return a.width
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  tvguide")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	visible := a.visible()

	// Header
	headerLeft := headerStyle.Render("tvguide")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Genre bar (replaced by the search input while searching)
	bar := a.genreBar.render(a.width)
	if a.mode == modeSearch {
		bar = a.searchInput.View()
	}

	// Preview of the selected movie
	var selected *guide.Movie
	if len(visible) > 0 && a.cursor < len(visible) {
		selected = &visible[a.cursor]
	}
	preview := renderPreview(selected, a.width)

	// Status bar
	status := renderStatusBar(
		len(visible), a.startHour, a.minRating,
		a.genreBar.activeLabel(), len(a.warnings), a.width,
		a.mode == modeSearch, a.scanning,
	)
	if a.scanning {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	// Grid fills the remaining height
	used := 1 + 1 + 1 // header + bar + status
	if preview != "" {
		used += lipgloss.Height(preview)
	}
	gridHeight := a.height - used
	if gridHeight < 3 {
		gridHeight = 3
	}

	grid := renderGrid(visible, a.cursor, a.width, gridHeight)

	sections := []string{header, bar, grid}
	if preview != "" {
		sections = append(sections, preview)
	}
	sections = append(sections, status)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("tvguide")
	dim := helpDimStyle

	help := title + dim.Render(" — Skroty klawiszowe") + "\n\n" +
		dim.Render("Nawigacja") + "\n" +
		"  h/j/k/l, strzalki   Poruszanie po siatce filmow\n\n" +
		dim.Render("Progi") + "\n" +
		"  +/-            Minimalny rating (co 0.5)\n" +
		"  [/]            Godzina startu (12-23, ponowny skan)\n\n" +
		dim.Render("Akcje") + "\n" +
		"  o, enter       Otworz strone IMDb\n" +
		"  r              Ponowny skan programu\n" +
		"  /              Szukaj po tytule\n" +
		"  g              Filtr gatunkow\n\n" +
		dim.Render("Ogolne") + "\n" +
		"  ?              Pokaz/ukryj pomoc\n" +
		"  q, ctrl+c      Wyjscie"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
