package experiments

import (
	"fmt"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Games     int
	Seed      uint64 // Seeds the random opponent of the first game
	OutputDir string
}

type Summary struct {
	Dir         string // Where the records were written
	Games       int
	AdvisorWins int
	RandomWins  int
	Ties        int
	Unfinished  int
}

// RunMatchups plays the advisor against a seeded random player, alternating
// the side the advisor takes, and writes the game and move records.
func RunMatchups(cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("expected a positive number of games, got %d", cfg.Games)
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	summary := Summary{Dir: writer.Dir(), Games: cfg.Games}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting advisor experiment with %d games...", cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		advisorSide := game.Side1
		if i%2 == 1 {
			advisorSide = game.Side2
		}
		log.Info().Msgf("starting game %d of %d with the advisor as %s...", i+1, cfg.Games, advisorSide)

		result, err := runGame(advisorSide, cfg.Seed+uint64(i))
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := uuid.New()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:          id,
			AdvisorSide: int(advisorSide),
			GameMetric:  result.Game,
		})
		for _, mm := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		switch {
		case !result.Outcome.Over():
			summary.Unfinished++
		case result.Outcome == game.Tie:
			summary.Ties++
		case winner(result.Outcome) == advisorSide:
			summary.AdvisorWins++
		default:
			summary.RandomWins++
		}

		log.Info().Msgf("completed game %d of %d with outcome: %s", i+1, cfg.Games, result.Outcome)
	}

	log.Info().Msgf("completed advisor experiment: %d advisor wins, %d random wins, %d ties",
		summary.AdvisorWins, summary.RandomWins, summary.Ties)

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game between the advisor and a random player.
// Side 1 always moves first.
func runGame(advisorSide game.Side, seed uint64) (engine.Result, error) {
	collector := metrics.NewCollector()
	var players [2]player.Player
	players[advisorSide-1] = player.NewComputer(player.WithCollector(collector))
	players[advisorSide.Other()-1] = player.NewRandom(seed)

	e := engine.LocalEngine(players, engine.WithCollector(collector))
	return e.Run()
}

func winner(o game.Outcome) game.Side {
	switch o {
	case game.Side1Wins:
		return game.Side1
	case game.Side2Wins:
		return game.Side2
	}
	return 0
}
