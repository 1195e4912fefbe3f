package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

// tickInterval drives the session. It matches the default autoplay interval
// so the planner replays at full speed.
const tickInterval = 10 * time.Millisecond

type tickMsg time.Time

type model struct {
	session *session.Session
	width   int
	height  int
	last    time.Time
}

func newModel(s *session.Session) model {
	return model{session: s, last: time.Now()}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

var keyActions = map[string]tetris.Action{
	"left":  tetris.Move{DX: -1},
	"right": tetris.Move{DX: 1},
	"up":    tetris.Rotate{Degrees: 90},
	"down":  tetris.Rotate{Degrees: -90},
	" ":     tetris.HardDrop{},
	"h":     tetris.Hold{},
	"r":     tetris.Reset{},
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		m.session.Tick(now.Sub(m.last).Seconds())
		m.last = now
		// Terminals report presses, not releases: soft drop lasts one tick.
		m.session.Input.SetSoft(false)
		return m, tickCmd()

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(key string) tea.Cmd {
	in := m.session.Input
	if a, ok := keyActions[key]; ok {
		in.Push(a)
		return nil
	}
	switch key {
	case "s":
		in.SetSoft(true)
	case "a":
		in.ToggleAutoplay()
	case "p":
		in.TogglePause()
	case "q", "esc", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m model) View() string {
	return render(m.session, m.width, m.height)
}
