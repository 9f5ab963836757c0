package engine

import (
	"fmt"
	"time"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/meta"
	"mancala/player"

	"github.com/rs/zerolog/log"
)

// Observer is called after every accepted move with the resulting state.
type Observer func(move game.Cell, state game.GameState)

type Option func(e *Engine)

func WithObserver(observe Observer) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// WithFirst sets the side making the opening move.
func WithFirst(side game.Side) Option {
	return func(e *Engine) {
		if side.Valid() {
			e.first = side
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithoutTurnLimit plays until the game ends, for interactive games.
func WithoutTurnLimit() Option {
	return func(e *Engine) {
		e.maxTurns = 0
	}
}

type Engine struct {
	players  [2]player.Player // Indexed by side - 1
	first    game.Side
	maxTurns int // 0 means no limit
	observe  Observer
	metrics  metrics.Collector
}

func LocalEngine(players [2]player.Player, options ...Option) *Engine {
	for i, p := range players {
		if p == nil {
			panic(fmt.Sprintf("missing player for side %d", i+1))
		}
	}

	e := &Engine{ // Default values
		players:  players,
		first:    game.Side1,
		maxTurns: meta.MAX_TURNS,
		observe:  func(game.Cell, game.GameState) {},
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. The side to
// move is asked again after an extra turn. A player error stops the game and
// is returned together with the result so far.
func (e *Engine) Run() (Result, error) {
	var master gamemaster.Engine = gamemaster.NewLocalEngine(e.first)
	state, getUpdate := master.Init()

	startTime := time.Now()
	var moves []metrics.MoveMetric
	log.Info().Msgf("%s is starting", state.Player())

	for step := 1; !state.Over() && (e.maxTurns == 0 || step <= e.maxTurns); step++ {
		side := state.Player()
		p := e.players[side-1]

		e.metrics.Start()
		move, err := p.FindMove(state)
		if err != nil {
			return e.result(state, moves, startTime), fmt.Errorf("%s: %w", side, err)
		}
		moveMetric := e.metrics.Complete(step, side, string(p.Kind()))

		if err := master.Play(move); err != nil {
			return e.result(state, moves, startTime), fmt.Errorf("%s played %s: %w", side, move, err)
		}
		_, next, ok := getUpdate()
		if !ok {
			return e.result(state, moves, startTime), fmt.Errorf("no update after %s played %s", side, move)
		}

		moveMetric.Pit = move
		moveMetric.ExtraTurn = next.ExtraTurn(state)
		moveMetric.Hash = next.Hash()
		moves = append(moves, moveMetric)

		log.Debug().
			Int("step", step).
			Stringer("side", side).
			Stringer("pit", move).
			Bool("extra_turn", moveMetric.ExtraTurn).
			Stringer("board", next.Board).
			Msg("move played")

		state = next
		e.observe(move, state)
	}

	if state.Over() {
		log.Info().Msgf("game ended after %d moves: %s", len(moves), state.Winner())
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	return e.result(state, moves, startTime), nil
}

func (e *Engine) result(state game.GameState, moves []metrics.MoveMetric, startTime time.Time) Result {
	endTime := time.Now()
	return Result{
		Outcome: state.Winner(),
		State:   state,
		Game: metrics.GameMetric{
			StartingSide: e.first,
			Outcome:      state.Winner(),
			Store1:       state.Board[game.Store1],
			Store2:       state.Board[game.Store2],
			StartTime:    startTime,
			EndTime:      endTime,
			Duration:     endTime.Sub(startTime),
			TotalMoves:   len(moves),
		},
		Moves: moves,
	}
}
