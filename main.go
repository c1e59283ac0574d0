package main

import (
	"flag"
	"os"
	"runtime"

	"circles/experiments"
	"circles/game"
	"circles/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	boardPath := flag.String("board", "", "YAML board topology (default: embedded hexagonal board)")
	games := flag.Int("games", meta.PLAYOUTS, "Number of random playouts")
	seed := flag.Uint64("seed", 1, "Seed of the first playout")
	goroutines := flag.Int("goroutines", runtime.NumCPU(), "Number of goroutines for parallel playouts")
	links := flag.Int("links", meta.MAX_LINKS, "Maximum links per turn")
	out := flag.String("out", "experiments", "Directory for CSV records, empty to skip")
	debug := flag.Bool("debug", false, "Log every engine command")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	newBoard := func() (*game.Board, error) { return game.DefaultBoard(), nil }
	if *boardPath != "" {
		// Fail early on a bad file rather than once per game.
		if _, err := game.LoadBoardFile(*boardPath); err != nil {
			log.Fatal().Err(err).Str("board", *boardPath).Msg("failed to load board")
		}
		newBoard = func() (*game.Board, error) { return game.LoadBoardFile(*boardPath) }
	}

	result, err := experiments.RunPlayouts(experiments.Config{
		Name:       "playouts",
		Games:      *games,
		Seed:       *seed,
		Goroutines: *goroutines,
		MaxLinks:   *links,
		NewBoard:   newBoard,
		Out:        *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("playouts failed")
	}

	best, paths, maps := 0, 0, 0
	for _, g := range result.Games {
		paths += g.PathTotal
		maps += g.MapTotal
		best = max(best, g.PathTotal+g.MapTotal)
	}
	n := max(len(result.Games), 1)
	log.Info().
		Int("games", len(result.Games)).
		Float64("avg_paths", float64(paths)/float64(n)).
		Float64("avg_maps", float64(maps)/float64(n)).
		Int("best", best).
		Str("records", result.Dir).
		Msg("playouts finished")
}
