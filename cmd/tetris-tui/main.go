package main

import (
	"flag"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Uint64("seed", 0, "bag seed (0 keeps the config value)")
	autoplay := flag.Bool("autoplay", false, "start with the planner playing")
	logPath := flag.String("log", "", "append logs to this file")
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

	// The terminal belongs to the UI; logs go to a file or nowhere.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "autotris ")
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	s := session.New(cfg, log.Default())
	if _, err := tea.NewProgram(newModel(s), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("UI exited with error: %v", err)
	}
}
