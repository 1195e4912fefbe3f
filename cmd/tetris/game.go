package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/autotris/loop/debugui"
	debugui_ebiten "github.com/plus3/autotris/loop/debugui/ebiten"
	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

// Game implements ebiten.Game around a session.
type Game struct {
	Session *session.Session
	Overlay *debugui.ImguiSystem
	Backend *debugui_ebiten.ImguiBackend
}

// keyActions maps key presses to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action tetris.Action
}{
	{ebiten.KeyLeft, tetris.Move{DX: -1}},
	{ebiten.KeyRight, tetris.Move{DX: 1}},
	{ebiten.KeyUp, tetris.Rotate{Degrees: 90}},
	{ebiten.KeyDown, tetris.Rotate{Degrees: -90}},
	{ebiten.KeySpace, tetris.HardDrop{}},
	{ebiten.KeyH, tetris.Hold{}},
	{ebiten.KeyR, tetris.Reset{}},
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.Overlay.Hidden = !g.Overlay.Hidden
	}

	if !g.Overlay.Hidden && g.Overlay.InputState.WantCaptureKeyboard {
		g.Session.Input.SetSoft(false)
	} else {
		g.readKeys()
	}

	g.Backend.BeginFrame()
	g.Session.Tick(1.0 / float64(ebiten.TPS()))
	g.Backend.EndFrame()
	return nil
}

func (g *Game) readKeys() {
	in := g.Session.Input
	for _, k := range keyActions {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Push(k.action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		in.ToggleAutoplay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.TogglePause()
	}
	in.SetSoft(ebiten.IsKeyPressed(ebiten.KeyShift))
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.Session.Snapshot(), g.Session.Ghost())
	drawPanel(screen, g.Session)
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
