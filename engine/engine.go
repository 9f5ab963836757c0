package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

type Result struct {
	Outcome game.Outcome
	State   game.GameState
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

type Runner interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (Result, error)
}

var _ Runner = (*Engine)(nil)
