package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/window"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	w := window.New(cfg.Window.Width, cfg.Window.Height)
	ctx := engine.NewGameContext(w, cfg.Serve.Seed, nil)
	systems.NewGame(ctx, cfg.KeyBindings())

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Loop.FPS)

	if err := ebiten.RunGame(window.NewGame(w, ctx, cfg.FrameInterval(), cfg.Debug)); err != nil {
		log.Fatal(err)
	}
	log.Printf("exit, score %s", ctx.Score.String())
}
