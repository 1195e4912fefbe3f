package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/loop/debugui"
	debugui_ebiten "github.com/plus3/autotris/loop/debugui/ebiten"
	"github.com/plus3/autotris/session"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Uint64("seed", 0, "bag seed (0 keeps the config value)")
	autoplay := flag.Bool("autoplay", false, "start with the planner playing")
	debug := flag.Bool("debug", false, "show the debug overlay on start")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Autoplay = cfg.Autoplay || *autoplay

	backend := debugui_ebiten.NewImguiBackend("autotris", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	s := session.New(cfg, log.Default())
	overlay := debugui.Attach(s)
	overlay.Hidden = !*debug

	game := &Game{
		Session: s,
		Overlay: overlay,
		Backend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
