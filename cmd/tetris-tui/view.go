package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

const (
	filledCell = "██"
	emptyCell  = " ·"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#808080"))

	panelStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#303030"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4500")).
			Bold(true)
)

func hexColor(c tetris.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X",
		uint8(c[0]*255), uint8(c[1]*255), uint8(c[2]*255)))
}

// renderGrid draws the cells two characters wide, one line per row.
func renderGrid(cells tetris.Grid) string {
	var sb strings.Builder
	for y, row := range cells {
		for _, cell := range row {
			if c, ok := cell.Color(); ok {
				sb.WriteString(lipgloss.NewStyle().Foreground(hexColor(c)).Render(filledCell))
			} else {
				sb.WriteString(emptyStyle.Render(emptyCell))
			}
		}
		if y < len(cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// renderPiece draws k in its spawn orientation.
func renderPiece(k tetris.Kind) string {
	var rows [2][4]bool
	for _, p := range tetris.NewTetromino(k).Cells() {
		if p.Y >= 0 && p.Y < 2 && p.X >= 3 && p.X < 7 {
			rows[p.Y][p.X-3] = true
		}
	}

	style := lipgloss.NewStyle().Foreground(hexColor(k.Color()))
	lines := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteString(filledCell)
			} else {
				sb.WriteString("  ")
			}
		}
		lines[y] = style.Render(sb.String())
	}
	return strings.Join(lines, "\n")
}

func renderPanel(s *session.Session) string {
	snap := s.Snapshot()
	planner := s.PlannerStats()
	rounds := s.RoundStats()

	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString("\n")
		sb.WriteString(value)
		sb.WriteString("\n\n")
	}

	line("LINES", fmt.Sprintf("%d", snap.Lines))
	line("PIECES", fmt.Sprintf("%d", snap.Pieces))
	line("NEXT", renderPiece(snap.Next))
	hold := "-"
	if snap.HasHold {
		hold = renderPiece(snap.Hold)
	}
	line("HOLD", hold)
	line("BEST", fmt.Sprintf("%d (%d rounds)", rounds.BestLines, rounds.Rounds))

	mode := "manual"
	if snap.Autoplay {
		mode = fmt.Sprintf("autoplay, search %s avg", planner.Avg().Round(time.Microsecond))
	}
	line("MODE", mode)
	if s.Paused() {
		sb.WriteString(pausedStyle.Render("PAUSED"))
		sb.WriteString("\n\n")
	}
	sb.WriteString("←/→ move  ↑/↓ rotate\nspace drop  s soft  h hold\na autoplay  p pause\nr reset  q quit")
	return sb.String()
}

func render(s *session.Session, width, height int) string {
	board := boardStyle.Render(renderGrid(s.Snapshot().Cells))
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(renderPanel(s)))
	if width == 0 || height == 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
