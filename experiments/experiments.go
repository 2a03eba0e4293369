// Package experiments plays AI-vs-AI games and records game outcomes
// and per-move search metrics for offline analysis.
package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ra/engine"
	"ra/game"
	"ra/searcher"
)

// RunConfig describes one experiment run.
type RunConfig struct {
	NumGames    int
	PlayerNames []string
	// AuctionBudget is the oracle search horizon for every seat.
	AuctionBudget int
	// OutDir is the root directory for the CSV output.
	OutDir string
}

// GameRecord is the outcome of one game.
type GameRecord struct {
	Game         int
	Winner       string
	WinnerPoints int
	Moves        int
	Duration     time.Duration
}

// MoveRecord is the search metrics of one move.
type MoveRecord struct {
	Game     int
	Move     int
	Player   string
	Action   game.Action
	Duration time.Duration
	Metric   searcher.SearchMetric
}

// Run plays the configured number of oracle-vs-oracle games and writes
// games.csv and moves.csv under the output directory.
func Run(ctx context.Context, cfg RunConfig) error {
	if cfg.NumGames <= 0 {
		return fmt.Errorf("numGames must be positive")
	}

	writer, err := NewWriter(cfg.OutDir)
	if err != nil {
		return err
	}

	var gameRecords []GameRecord
	var moveRecords []MoveRecord

	for i := 0; i < cfg.NumGames; i++ {
		games, moves, err := playOne(ctx, i, cfg)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		gameRecords = append(gameRecords, games)
		moveRecords = append(moveRecords, moves...)
		log.Info().
			Int("game", i).
			Str("winner", games.Winner).
			Int("points", games.WinnerPoints).
			Msg("experiment game finished")
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("experiment results written")
	return nil
}

func playOne(ctx context.Context, gameID int, cfg RunConfig) (GameRecord, []MoveRecord, error) {
	oracle := searcher.NewOracle(searcher.WithAuctionBudget(cfg.AuctionBudget))

	var moves []MoveRecord
	provider := func(state *game.GameState) (game.Action, error) {
		start := time.Now()
		action, _, metric, err := oracle.Search(state)
		if err != nil {
			return 0, err
		}
		moves = append(moves, MoveRecord{
			Game:     gameID,
			Move:     len(moves),
			Player:   state.CurrentPlayerName(),
			Action:   action,
			Duration: time.Since(start),
			Metric:   metric,
		})
		return action, nil
	}

	g, err := engine.NewRaGame(cfg.PlayerNames, engine.WithDefaultProvider(provider))
	if err != nil {
		return GameRecord{}, nil, err
	}

	start := time.Now()
	if err := g.Play(ctx); err != nil {
		return GameRecord{}, nil, err
	}

	winner, winnerPoints := "", 0
	for name, points := range g.State().PlayerPoints() {
		if winner == "" || points > winnerPoints {
			winner, winnerPoints = name, points
		}
	}
	record := GameRecord{
		Game:         gameID,
		Winner:       winner,
		WinnerPoints: winnerPoints,
		Moves:        len(g.Log().Moves),
		Duration:     time.Since(start),
	}
	return record, moves, nil
}
