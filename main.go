package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config, path, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if config.DebugLog != "" {
		f, err := tea.LogToFile(config.DebugLog, "elbow")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if path != "" {
		log.Printf("config loaded from %s", path)
	}

	m, err := initialModel(config, nil)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func initialModel(config *Config, ids IDSource) (model, error) {
	pal, err := config.palette()
	if err != nil {
		return model{}, err
	}
	return model{
		config:   config,
		palette:  pal,
		state:    NewEditorState(ids),
		renderer: newFrameRenderer(config.Geometry(), pal),
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m model) nextFrame() tea.Cmd {
	return tea.Tick(m.config.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		m.resizeSurface()
		return m, nil

	case frameMsg:
		m.renderFrame(time.Time(msg))
		return m, m.nextFrame()

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case " ", "enter":
			m.keyboard = true
			m.togglePointer(m.cellCenter(m.cursorX, m.cursorY))
		case "h", "j", "k", "l", "H", "J", "K", "L",
			"left", "right", "up", "down",
			"shift+left", "shift+right", "shift+up", "shift+down":
			m.handleCursorMove(key, m.getMoveSpeed(key))
		}
		return m, nil
	}
	return m, nil
}

// handleMouse translates terminal mouse reports into pointer events. Every
// report moves the pointer first so press and release positions are also
// hover positions.
func (m *model) handleMouse(msg tea.MouseMsg) {
	m.keyboard = false
	m.cursorX, m.cursorY = msg.X, msg.Y
	m.ensureCursorInBounds()
	p := m.cellCenter(m.cursorX, m.cursorY)
	m.state.PointerMove(p)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.state.PointerDown(p)
	case msg.Action == tea.MouseActionRelease &&
		(msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone):
		m.pointerUp(p)
	}
}

// togglePointer is the keyboard stand-in for a click: it presses when no
// connection is open and releases otherwise.
func (m *model) togglePointer(p Point) {
	m.state.PointerMove(p)
	if m.state.Pending == nil {
		m.state.PointerDown(p)
		return
	}
	m.pointerUp(p)
}

func (m *model) pointerUp(p Point) {
	m.errorMessage = ""
	if _, _, err := m.state.PointerUp(p); err != nil {
		log.Printf("pointer up: %v", err)
		m.errorMessage = err.Error()
	}
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	rows := m.height - statusRows
	for i := 0; i < rows; i++ {
		if i < len(m.frame) {
			b.WriteString(m.frame[i])
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) statusLine() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(statusRows).
		Foreground(lipgloss.Color(m.config.BackgroundColor)).
		Background(lipgloss.Color(m.config.LineColor))

	if m.errorMessage != "" {
		return style.Background(lipgloss.Color(m.config.HoverColor)).Render(" " + m.errorMessage)
	}

	status := fmt.Sprintf(" %s | lines %d | hover %d | pointer %s | frame %s | ? help",
		m.modeString(),
		m.state.Lines.Len(),
		m.state.Highlight.Len(),
		formatPoint(m.state.Pointer),
		formatDelta(m.state.LastDelta),
	)
	return style.Render(status)
}

func (m model) modeString() string {
	switch m.state.mode() {
	case ModeConnecting:
		return "CONNECTING"
	default:
		return "READY"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Elbow Help",
		"==========",
		"",
		"Mouse:",
		"------",
		"  press            Start a connector at the pointer",
		"  drag             Preview the connector following the pointer",
		"  release          Commit the connector",
		"  hover            Highlight connectors under the pointer",
		"",
		"Keyboard:",
		"---------",
		"  h/←/j/↓/k/↑/l/→  Move the pointer one cell",
		"  Shift+h/j/k/l    Move the pointer two cells",
		"  Space/Enter      Start a connector, or commit the open one",
		"  ?                Toggle this help",
		"  q/Ctrl+C         Quit",
	}
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Foreground(lipgloss.Color(m.config.LineColor)).
		Background(lipgloss.Color(m.config.BackgroundColor))
	return style.Render(strings.Join(helpLines, "\n"))
}
