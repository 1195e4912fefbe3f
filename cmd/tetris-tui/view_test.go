package main

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	return session.New(cfg, log.New(io.Discard, "", 0), tetris.WithClock(tetris.NewManualClock(time.Unix(0, 0))))
}

func TestRenderGridShape(t *testing.T) {
	var g tetris.Grid
	g[tetris.BoardHeight-1][0] = tetris.Filled(tetris.Color{1, 0, 0})

	lines := strings.Split(renderGrid(g), "\n")
	require.Len(t, lines, tetris.BoardHeight)
	assert.Equal(t, 1, strings.Count(lines[tetris.BoardHeight-1], filledCell))
	assert.Equal(t, 0, strings.Count(lines[0], filledCell))
}

func TestRenderPiece(t *testing.T) {
	o := renderPiece(tetris.O)
	assert.Equal(t, 2, strings.Count(o, "\n")+1)
	assert.Equal(t, 4, strings.Count(o, filledCell))

	i := renderPiece(tetris.I)
	assert.Equal(t, 4, strings.Count(i, filledCell))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#FF0000", string(hexColor(tetris.Color{1, 0, 0})))
}

func TestKeysReachInput(t *testing.T) {
	s := newTestSession(t)
	m := newModel(s)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	assert.Equal(t, 2, s.Input.Pending())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.True(t, s.Input.Soft())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTickReleasesSoftDrop(t *testing.T) {
	s := newTestSession(t)
	m := newModel(s)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	_, cmd := m.Update(tickMsg(m.last.Add(tickInterval)))
	assert.NotNil(t, cmd)
	assert.False(t, s.Input.Soft())
	assert.Zero(t, s.Input.Pending())
}

func TestViewMentionsState(t *testing.T) {
	s := newTestSession(t)
	s.Tick(0)
	view := render(s, 0, 0)
	assert.Contains(t, view, "LINES")
	assert.Contains(t, view, "manual")
}
