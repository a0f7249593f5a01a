package main

import (
	"fmt"
	"log"
	"net/http"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/loop"
	"torus-snake/stats"
	"torus-snake/term"
	"torus-snake/ui"
	"torus-snake/web"
)

func runRaylib(cfg loop.Config, sinks loop.MultiSink, inputs loop.MultiInput, recorder *stats.Recorder, gameOpts []game.Option) error {
	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(recorder)
	l, err := loop.New(cfg, append(sinks, renderer), append(inputs, renderer), loop.WithGameOptions(gameOpts...))
	if err != nil {
		return err
	}
	defer l.Stop()
	if err := l.Start(); err != nil {
		return err
	}

	for !rl.WindowShouldClose() {
		restart, quit := renderer.PollInput()
		if quit {
			break
		}
		if restart {
			if err := l.Start(); err != nil {
				return err
			}
		}
		renderer.Draw()
	}
	return nil
}

func runTerm(cfg loop.Config, sinks loop.MultiSink, inputs loop.MultiInput, gameOpts []game.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if w, h := screen.Size(); w < 2*cfg.GridSize || h < cfg.GridSize+1 {
		return fmt.Errorf("terminal %dx%d too small for a %dx%d grid", w, h, cfg.GridSize, cfg.GridSize)
	}

	display := term.New(screen)
	l, err := loop.New(cfg, append(sinks, display), append(inputs, display), loop.WithGameOptions(gameOpts...))
	if err != nil {
		return err
	}
	defer l.Stop()
	if err := l.Start(); err != nil {
		return err
	}
	return display.Run(l.Start)
}

func runWeb(cfg loop.Config, sinks loop.MultiSink, inputs loop.MultiInput, addr string, gameOpts []game.Option) error {
	hub := web.NewHub()
	defer hub.Close()

	l, err := loop.New(cfg, append(sinks, hub), append(inputs, hub), loop.WithGameOptions(gameOpts...))
	if err != nil {
		return err
	}
	defer l.Stop()

	hub.OnRestart(func() {
		if err := l.Start(); err != nil {
			log.Printf("restart failed: %v", err)
		}
	})
	if err := l.Start(); err != nil {
		return err
	}

	log.Printf("serving on %s", addr)
	return http.ListenAndServe(addr, hub.Handler())
}
