package main

import (
	"flag"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"torus-snake/audio"
	"torus-snake/autopilot"
	"torus-snake/game"
	"torus-snake/loop"
	"torus-snake/stats"
)

func main() {
	defaults := loop.DefaultConfig()
	size := flag.Int("size", defaults.GridSize, "Grid side length in cells")
	speed := flag.Int("speed", int(defaults.TickInterval/time.Millisecond), "Tick interval in milliseconds (lower = faster)")
	host := flag.String("host", "raylib", "Display: raylib, term or web")
	addr := flag.String("addr", ":8080", "Listen address for -host=web")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot steer")
	sound := flag.Bool("sound", false, "Play tones on growth and game over")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	cfg := loop.Config{
		GridSize:     *size,
		TickInterval: time.Duration(*speed) * time.Millisecond,
		Start:        defaults.Start,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	recorder := stats.NewRecorder()
	sinks := loop.MultiSink{recorder}
	var inputs loop.MultiInput

	if *sound {
		spk, err := audio.NewSpeaker()
		if err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer spk.Close()
			sinks = append(sinks, audio.NewChime(spk))
		}
	}
	if *autoplay {
		pilot := autopilot.New(*seed)
		sinks = append(sinks, pilot)
		inputs = append(inputs, pilot)
	}

	var gameOpts []game.Option
	if *seed != 0 {
		gameOpts = append(gameOpts, game.WithRand(rand.New(rand.NewSource(*seed))))
	}

	var err error
	switch *host {
	case "raylib":
		err = runRaylib(cfg, sinks, inputs, recorder, gameOpts)
	case "term":
		err = runTerm(cfg, sinks, inputs, gameOpts)
	case "web":
		err = runWeb(cfg, sinks, inputs, *addr, gameOpts)
	default:
		log.Fatalf("unknown host %q", *host)
	}
	if err != nil {
		log.Fatalf("%s host: %v", *host, err)
	}

	log.Printf("played %d games, best size %d, average %.1f",
		recorder.GetGamesPlayed(), recorder.GetMaxSize(), recorder.GetAverageSize())
}
