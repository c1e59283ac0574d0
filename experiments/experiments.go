package experiments

import (
	"fmt"
	"runtime"
	"sync"

	"circles/engine"
	"circles/experiments/metrics"
	"circles/game"
	"circles/meta"
	"circles/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Config describes a batch of random playouts.
type Config struct {
	Name       string
	Games      int
	Seed       uint64
	Goroutines int
	MaxLinks   int
	Rules      game.Rules
	// NewBoard returns a fresh board for every game.
	NewBoard func() (*game.Board, error)
	// Out is the root directory for records; empty skips writing.
	Out string
}

type Result struct {
	Games []metrics.GameRecord
	Turns []metrics.TurnRecord
	Dir   string
}

// RunPlayouts plays cfg.Games random games in parallel and collects their
// records. Game i is seeded with cfg.Seed+i, so results do not depend on
// how games are spread over goroutines.
func RunPlayouts(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		cfg.Games = meta.PLAYOUTS
	}
	if cfg.Goroutines <= 0 {
		cfg.Goroutines = runtime.NumCPU()
	}
	if cfg.Rules == nil {
		cfg.Rules = game.NewStandardRules()
	}
	if cfg.NewBoard == nil {
		cfg.NewBoard = func() (*game.Board, error) { return game.DefaultBoard(), nil }
	}
	if cfg.Name == "" {
		cfg.Name = "playouts"
	}

	log.Info().Msgf("starting %s: %d games on %d goroutines...", cfg.Name, cfg.Games, cfg.Goroutines)

	type outcome struct {
		game  metrics.GameMetric
		turns []metrics.TurnMetric
		err   error
	}
	outcomes := make([]outcome, cfg.Games)

	task := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				gm, turns, err := playout(cfg, cfg.Seed+uint64(i))
				outcomes[i] = outcome{game: gm, turns: turns, err: err}
				if err == nil {
					log.Debug().Msgf("completed game %d of %d with paths=%d maps=%d", i+1, cfg.Games, gm.PathTotal, gm.MapTotal)
				}
			}
		}()
	}
	wg.Wait()

	result := Result{}
	for i, o := range outcomes {
		if o.err != nil {
			return Result{}, fmt.Errorf("game %d failed: %w", i+1, o.err)
		}
		result.Games = append(result.Games, metrics.GameRecord{ID: i + 1, GameMetric: o.game})
		for _, tm := range o.turns {
			result.Turns = append(result.Turns, metrics.TurnRecord{Game: i + 1, TurnMetric: tm})
		}
	}

	log.Info().Msgf("completed %s", cfg.Name)

	if cfg.Out == "" {
		return result, nil
	}
	writer, err := metrics.NewWriter(cfg.Out, cfg.Name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return Result{}, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteTurnRecords(result.Turns); err != nil {
		return Result{}, err
	}
	log.Info().Msg("stored turn records")
	result.Dir = writer.Dir()
	return result, nil
}

// playout plays one random game to completion.
func playout(cfg Config, seed uint64) (metrics.GameMetric, []metrics.TurnMetric, error) {
	board, err := cfg.NewBoard()
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("failed to build board: %w", err)
	}
	src := rand.New(rand.NewSource(seed))
	g := engine.NewGame(board, engine.WithSource(src), engine.WithRules(cfg.Rules))

	collector := metrics.NewCollector()
	collector.Start(g.ID())

	p := player.NewRandom(g, src, cfg.MaxLinks)
	moves, err := p.Play()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	for _, m := range moves {
		collector.AddTurn(metrics.TurnMetric{
			Turn:    m.Turn,
			Pairing: m.Pairing,
			Value:   m.Value,
			Cell:    m.Cell,
			Links:   len(m.Links),
		})
	}

	gm, turns := collector.Complete(g.Scores())
	return gm, turns, nil
}
