// Package tui provides a Bubble Tea terminal user interface for browsing
// constellations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/starfetch/internal/app"
	"github.com/handiism/starfetch/internal/catalog"
	"github.com/handiism/starfetch/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A8DADC"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	mapStyle = lipgloss.NewStyle().
			Padding(0, 2)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateError
)

// summaryItem adapts catalog.Summary to list.Item.
type summaryItem struct {
	summary catalog.Summary
}

func (i summaryItem) Title() string       { return i.summary.Name }
func (i summaryItem) Description() string { return i.summary.Stem + " · " + i.summary.Quadrant }
func (i summaryItem) FilterValue() string { return i.summary.Name + " " + i.summary.Stem }

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state   State
	app     *app.App
	list    list.Model
	spinner spinner.Model
	err     error

	// Rendered map of the selected constellation
	selected string
	preview  string

	ctx context.Context

	width  int
	height int
}

// NewModel creates a new TUI model over a.
func NewModel(ctx context.Context, a *app.App) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Constellations"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		state:   StateLoading,
		app:     a,
		list:    l,
		spinner: sp,
		ctx:     ctx,
	}
}

// Message types
type (
	// LoadedMsg is sent when the catalog summaries have been read.
	LoadedMsg struct {
		Summaries []catalog.Summary
		Err       error
	}
)

// Init starts loading the catalog.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSummaries(), m.spinner.Tick)
}

func (m Model) loadSummaries() tea.Cmd {
	return func() tea.Msg {
		names, err := m.app.Catalog().Names()
		if err != nil {
			return LoadedMsg{Err: err}
		}
		summaries, err := m.app.Catalog().Summaries(m.ctx, names)
		return LoadedMsg{Summaries: summaries, Err: err}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth(msg.Width), msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q", "esc":
			if m.state != StateBrowsing {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateBrowsing && m.list.FilterState() == list.Unfiltered {
				m.pickRandom()
				m.updatePreview()
				return m, nil
			}
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case LoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		items := make([]list.Item, len(msg.Summaries))
		for i, s := range msg.Summaries {
			items[i] = summaryItem{summary: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.state = StateBrowsing
		m.updatePreview()
	}

	if m.state == StateBrowsing {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		m.updatePreview()
	}

	return m, tea.Batch(cmds...)
}

// pickRandom selects a random visible constellation.
func (m *Model) pickRandom() {
	name, err := m.app.Catalog().Random(nil)
	if err != nil {
		return
	}
	for i, item := range m.list.Items() {
		if item.(summaryItem).summary.Stem == name {
			m.list.Select(i)
			return
		}
	}
}

// updatePreview re-renders the map when the selection changed.
func (m *Model) updatePreview() {
	sel, ok := m.list.SelectedItem().(summaryItem)
	if !ok {
		m.selected = ""
		m.preview = ""
		return
	}
	if sel.summary.Stem == m.selected {
		return
	}

	m.selected = sel.summary.Stem
	c, err := m.app.Catalog().Fetch(sel.summary.Stem)
	if err != nil {
		m.preview = errorStyle.Render(err.Error())
		return
	}
	m.preview = m.app.Renderer().String(c)
}

// View renders the UI.
func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return m.spinner.View() + " " + subtitleStyle.Render("Loading constellations...") + "\n"
	case StateError:
		return m.viewError()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		mapStyle.Render(strings.TrimSuffix(m.preview, "\n")),
	)
	return body + "\n" + dimStyle.Render(m.getHelpText())
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowsing:
		return "↑/↓: move • /: filter • r: random • q: quit"
	case StateError:
		return "q: quit"
	}
	return ""
}

func listWidth(total int) int {
	// leave room for the 24 column map, its padding and the metadata
	w := total - 70
	if w < 24 {
		w = 24
	}
	if w > 40 {
		w = 40
	}
	return w
}

// Run starts the TUI application.
func Run(ctx context.Context, settings *config.Settings) error {
	a, err := app.New(settings, os.Stdout, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return exitError(err)
}

// exitError drops the error bubbletea reports when ctx is cancelled, so a
// signal ends the program like a normal quit.
func exitError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
