// Command autoplay runs headless games with random input and prints batch statistics
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/lixenwraith/vi-tetris/config"
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/input"
	"github.com/lixenwraith/vi-tetris/stats"
)

func main() {
	var (
		games    = flag.Int("games", constants.AutoplayDefaultGames, "number of games to play")
		seed     = flag.Int64("seed", 1, "seed of the first game, incremented per game")
		maxTicks = flag.Uint64("max-ticks", constants.AutoplayMaxTicks, "tick cap per game")
		cfgPath  = flag.String("config", "", "YAML settings file")
		quiet    = flag.Bool("quiet", false, "hide the progress bar")
		verbose  = flag.Bool("v", false, "log every game to stderr")
	)
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		if err := cfg.LoadFile(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
		os.Exit(1)
	}
	if *games < 1 {
		fmt.Fprintln(os.Stderr, "autoplay: -games must be positive")
		os.Exit(1)
	}

	batch := stats.NewBatch()
	bar := pb.StartNew(*games)
	if *quiet {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < *games; i++ {
		s := *seed + int64(i)
		result, err := playGame(cfg.Rules(), input.NewRandom(s), *maxTicks, batch)
		if err != nil {
			bar.Finish()
			fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
			os.Exit(1)
		}
		result.Seed = s
		batch.Record(result)
		log.Printf("Game %d seed=%d phase=%s score=%d pieces=%d ticks=%d", i, s, result.Phase, result.Score, result.Pieces, result.Ticks)
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	if err := batch.WriteReport(os.Stdout, used); err != nil {
		fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
		os.Exit(1)
	}
}

// playGame steps one game without a clock until it ends or hits maxTicks
func playGame(rules engine.Rules, source input.Source, maxTicks uint64, listener engine.Listener) (stats.GameResult, error) {
	game, err := engine.NewGame(rules)
	if err != nil {
		return stats.GameResult{}, err
	}

	var ticks uint64
	for !game.Phase().Terminal() && ticks < maxTicks {
		result := game.Step(source.Poll())
		ticks++
		if listener != nil && (result.Lock.Locked || result.Lock.GameOver) {
			listener.OnLock(result.Lock)
		}
	}

	snap := game.Snapshot()
	return stats.GameResult{
		Phase:  snap.Phase,
		Score:  snap.Score,
		Pieces: snap.Pieces,
		Ticks:  ticks,
	}, nil
}
