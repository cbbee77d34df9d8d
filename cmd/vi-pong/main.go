package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/terminal"
)

var saveConfig = flag.String("save-config", "", "write the resolved configuration to this path and exit")

func main() {
	// Panic Recovery: reset the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if *saveConfig != "" {
		if err := cfg.Save(*saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("configuration written to %s\n", *saveConfig)
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config loaded from %q", cfg.Path)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}

	term := terminal.New(screen, nil, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	ctx := engine.NewGameContext(term, cfg.Serve.Seed, nil)
	systems.NewGame(ctx, cfg.KeyBindings())

	interval := cfg.FrameInterval()
	loop := terminal.NewLoop(term, ctx, interval, cfg.Debug)

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		// Input poller crash also has to restore the terminal
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		terminal.PollEvents(screen, eventChan)
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	loop.Run(eventChan, frameTicker.C)
	log.Printf("exit, score %s", ctx.Score.String())
}
