package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

const (
	CellSize = 30
	OffsetX  = 440
	OffsetY  = 50
)

var (
	backgroundColor = color.RGBA{20, 20, 24, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	cellBorderColor = color.RGBA{0, 0, 0, 255}
)

func rgba(c tetris.Color, alpha uint8) color.RGBA {
	return color.RGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: alpha,
	}
}

func drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	sx := float32(OffsetX + x*CellSize)
	sy := float32(OffsetY + y*CellSize)
	vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, c, false)
	vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, cellBorderColor, false)
}

func drawBoard(screen *ebiten.Image, snap tetris.Snapshot, ghost bool) {
	screen.Fill(backgroundColor)
	vector.StrokeRect(screen, OffsetX-2, OffsetY-2,
		tetris.BoardWidth*CellSize+4, tetris.BoardHeight*CellSize+4, 2, borderColor, false)

	isGhost := func(x, y int) bool {
		if !ghost {
			return false
		}
		for _, p := range snap.Ghost {
			if p.X == x && p.Y == y {
				return true
			}
		}
		return false
	}
	isPiece := func(x, y int) bool {
		for _, p := range snap.Piece {
			if p.X == x && p.Y == y {
				return true
			}
		}
		return false
	}

	for y, row := range snap.Cells {
		for x, cell := range row {
			c, ok := cell.Color()
			if !ok {
				continue
			}
			alpha := uint8(255)
			if isGhost(x, y) && !isPiece(x, y) {
				alpha = 90
			}
			drawCell(screen, x, y, rgba(c, alpha))
		}
	}
}

// drawPreview draws k at a fixed spot to the right of the board.
func drawPreview(screen *ebiten.Image, k tetris.Kind, x, y int) {
	piece := tetris.NewTetromino(k)
	for _, p := range piece.Cells() {
		sx := float32(x + (p.X-3)*CellSize/2)
		sy := float32(y + p.Y*CellSize/2)
		vector.DrawFilledRect(screen, sx, sy, CellSize/2, CellSize/2, rgba(k.Color(), 255), false)
	}
}

func drawPanel(screen *ebiten.Image, s *session.Session) {
	snap := s.Snapshot()
	textX := OffsetX + tetris.BoardWidth*CellSize + 20

	ebitenutil.DebugPrintAt(screen, "LINES", textX, OffsetY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Lines), textX, OffsetY+16)

	ebitenutil.DebugPrintAt(screen, "PIECES", textX, OffsetY+44)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Pieces), textX, OffsetY+60)

	ebitenutil.DebugPrintAt(screen, "NEXT", textX, OffsetY+92)
	drawPreview(screen, snap.Next, textX, OffsetY+112)

	ebitenutil.DebugPrintAt(screen, "HOLD", textX, OffsetY+156)
	if snap.HasHold {
		drawPreview(screen, snap.Hold, textX, OffsetY+176)
	}

	rounds := s.RoundStats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST %d", rounds.BestLines), textX, OffsetY+224)

	status := "MANUAL"
	if snap.Autoplay {
		status = "AUTOPLAY"
	}
	ebitenutil.DebugPrintAt(screen, status, textX, OffsetY+252)
	if s.Paused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", OffsetX+70, OffsetY+tetris.BoardHeight*CellSize/2)
	}

	ebitenutil.DebugPrintAt(screen,
		"arrows move/rotate  space drop  shift soft  h hold\na autoplay  p pause  r reset  F1 debug  q quit",
		OffsetX, OffsetY+tetris.BoardHeight*CellSize+12)
}
