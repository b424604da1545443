// Package ui is the terminal diagram editor: a textarea with live
// validation markers and a status bar.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quiver/internal/diag"
	"quiver/internal/format"
	"quiver/internal/lang"
	"quiver/internal/live"
)

// EditorOptions configures the editor session.
type EditorOptions struct {
	Path    string
	Content string
	Live    live.Options
	Format  format.Options
}

type markerEvent struct {
	markers []diag.Marker
	ok      bool
	message string
}

// chanSink собирает пару ApplyMarkers/RenderStatus в одно событие для
// цикла Bubble Tea.
type chanSink struct {
	events  chan markerEvent
	pending []diag.Marker
}

func (s *chanSink) ApplyMarkers(markers []diag.Marker) {
	s.pending = markers
}

func (s *chanSink) RenderStatus(ok bool, message string) {
	s.events <- markerEvent{markers: s.pending, ok: ok, message: message}
}

type editorModel struct {
	path    string
	area    textarea.Model
	checker *live.Checker
	events  chan markerEvent
	fmtOpts format.Options

	markers   []diag.Marker
	statusOK  bool
	statusMsg string
	dirty     bool
	saveErr   error
	width     int
	height    int
}

// NewEditorModel returns a Bubble Tea model hosting the live checker.
func NewEditorModel(opts EditorOptions) tea.Model {
	lang.Register(lang.Default())

	area := textarea.New()
	area.Placeholder = "graph TD"
	area.SetValue(opts.Content)
	area.Focus()

	events := make(chan markerEvent, 8)
	liveOpts := opts.Live
	liveOpts.Sink = &chanSink{events: events}
	checker := live.NewChecker(liveOpts)
	checker.OnChange(opts.Content)

	return &editorModel{
		path:     opts.Path,
		area:     area,
		checker:  checker,
		events:   events,
		fmtOpts:  opts.Format,
		statusOK: true,
	}
}

func (m *editorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.listenForEvent())
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case markerEvent:
		m.markers = msg.markers
		m.statusOK = msg.ok
		m.statusMsg = msg.message
		return m, m.listenForEvent()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.area.SetWidth(msg.Width)
		if msg.Height > 2 {
			m.area.SetHeight(msg.Height - 2)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.checker.Close()
			return m, tea.Quit
		case "ctrl+s":
			m.saveErr = m.save()
			if m.saveErr == nil {
				m.dirty = false
			}
			return m, nil
		case "ctrl+f":
			formatted := format.Format(m.area.Value(), m.fmtOpts)
			if formatted != m.area.Value() {
				m.area.SetValue(formatted)
				m.dirty = true
				m.checker.OnChange(formatted)
			}
			return m, nil
		}
	}

	before := m.area.Value()
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if after := m.area.Value(); after != before {
		m.dirty = true
		m.checker.OnChange(after)
	}
	return m, cmd
}

func (m *editorModel) View() string {
	return m.area.View() + "\n" + m.statusBar()
}

var (
	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("8"))
)

func (m *editorModel) statusBar() string {
	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if m.dirty {
		name += " *"
	}

	badge := statusOKStyle.Render(" ok ")
	detail := ""
	switch {
	case m.saveErr != nil:
		badge = statusErrStyle.Render(" io ")
		detail = m.saveErr.Error()
	case !m.statusOK:
		badge = statusErrStyle.Render(" err ")
		detail = m.statusMsg
		if len(m.markers) > 0 {
			mk := m.markers[0]
			detail = fmt.Sprintf("%d:%d %s", mk.StartLine, mk.StartCol, mk.Message)
		}
	}

	line := fmt.Sprintf("%s %s  %s", badge, name, detail)
	width := m.width
	if width <= 0 {
		width = 80
	}
	line = runewidth.Truncate(line, width, "…")
	pad := width - runewidth.StringWidth(line)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return statusBarStyle.Render(line)
}

func (m *editorModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *editorModel) save() error {
	if m.path == "" {
		return fmt.Errorf("no file to save to")
	}
	return os.WriteFile(m.path, []byte(m.area.Value()), 0o644)
}

// RunEditor opens the editor over path (created on save if missing).
func RunEditor(opts EditorOptions) error {
	model := NewEditorModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
