// Package ui renders progress for directory-wide runs on a terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Status of one file in the run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusDone
	StatusError
)

// Event reports a file's status change to the progress display.
type Event struct {
	File   string
	Status Status
}

type progressModel struct {
	title  string
	events <-chan Event
	prog   progress.Model
	items  []fileItem
	index  map[string]int
	width  int
	done   bool
}

type fileItem struct {
	path   string
	status Status
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model rendering check progress.
// The model quits when the event channel closes.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: StatusQueued})
		index[file] = i
	}
	return &progressModel{
		title:  title,
		events: events,
		prog:   prog,
		items:  items,
		index:  index,
		width:  80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return m.listenForEvent()
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		label := statusLabel(item.status)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%10s", label))
		b.WriteString(fmt.Sprintf("  %s %s", statusStyled, name))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status

	finished := 0
	for _, item := range m.items {
		if item.status == StatusDone || item.status == StatusError {
			finished++
		}
	}
	return m.prog.SetPercent(float64(finished) / float64(len(m.items)))
}

func statusLabel(status Status) string {
	switch status {
	case StatusChecking:
		return "checking"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "queued"
	}
}

func styleStatus(status Status) lipgloss.Style {
	switch status {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case StatusChecking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
