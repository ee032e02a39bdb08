package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tetris/audio"
	"github.com/lixenwraith/vi-tetris/config"
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/input"
	"github.com/lixenwraith/vi-tetris/render"
	"github.com/lixenwraith/vi-tetris/status"
)

// Field origin on screen
const (
	fieldOriginX = 2
	fieldOriginY = 1
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-tetris: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	game, err := engine.NewGame(cfg.Rules())
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-tetris: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	screen.HideCursor()
	screen.Clear()

	summary, runErr := run(cfg, game, screen)
	core.SetCrashScreen(nil)
	screen.Fini()

	log.Printf("Exit: phase=%s score=%d pieces=%d ticks=%d duration=%v",
		summary.Phase, summary.Score, summary.Pieces, summary.Ticks, summary.Duration().Round(time.Millisecond))
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "vi-tetris: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Score: %d\n", summary.Score)
}

// run owns the screen between Init and Fini
func run(cfg config.Config, game *engine.Game, screen tcell.Screen) (engine.RunSummary, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	latest := input.NewLatest()
	pump := input.NewPump(screen, input.DefaultKeyTable(), latest)
	pump.OnResize(screen.Sync)
	core.Go(pump.Run)

	runner := engine.NewRunner(game, latest, render.NewTerminalRenderer(screen, fieldOriginX, fieldOriginY), cfg.FrameInterval)
	reg := status.NewRegistry()
	runner.SetStatus(reg)
	defer func() {
		for _, m := range reg.Snapshot() {
			log.Printf("Status %s=%g", m.Name, m.Value)
		}
	}()

	if cfg.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
			runner.AddListener(sound)
		}
	}

	summary, err := runner.Run(ctx)
	if err == nil && summary.Phase == engine.PhaseGameOver {
		holdGameOver(ctx, latest)
	}
	return summary, err
}

// holdGameOver keeps the final frame up until a quit key or the hold expires
func holdGameOver(ctx context.Context, latest *input.Latest) {
	deadline := time.NewTimer(constants.GameOverHold)
	defer deadline.Stop()
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			return
		case <-ticker.C:
			if latest.Poll() == input.CommandQuit {
				return
			}
		}
	}
}
