package main

import (
	"flag"
	"log"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"jeweljam"
)

func main() {
	configPath := flag.String("config", "jeweljam.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := jeweljam.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	game := jeweljam.NewJewelJam(cfg, nil, nil, nil)
	if err := game.LoadContent(); err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
