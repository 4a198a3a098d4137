//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terrarium/internal/app"
	"terrarium/internal/audio"
	"terrarium/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("terrarium: ")
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	cue, err := audio.NewCue(cfg.Sound)
	if err != nil {
		log.Printf("sound disabled: %v", err)
	}
	defer cue.Close()

	session := sandbox.New(cfg.Session())
	game := app.New(session, cue)

	ebiten.SetWindowTitle("terrarium")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
