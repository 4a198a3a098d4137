package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"terrarium/internal/app"
	"terrarium/internal/audio"
	"terrarium/internal/tui"
)

func main() {
	log.SetPrefix("terrarium-tui: ")
	log.SetFlags(0)

	// Width, height and cell size come from the terminal.
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	front := tui.New(screen, cfg.Session(), cfg.TPS, cue)
	err = front.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
