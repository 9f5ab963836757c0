package gamemaster

import (
	"errors"
	"fmt"

	"mancala/game"

	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// UpdateGetter returns the next accepted move and the state it produced, or
// ok=false when no update is pending or the game is over and drained.
type UpdateGetter func() (move game.Cell, state game.GameState, ok bool)

type Engine interface {
	Init() (game.GameState, UpdateGetter)
	Play(game.Cell) error
	State() game.GameState
}

type update struct {
	move  game.Cell
	state game.GameState
}

type localEngine struct {
	first    game.Side
	state    game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine(first game.Side) *localEngine {
	return &localEngine{first: first}
}

// Init resets the session to the starting position.
func (e *localEngine) Init() (game.GameState, UpdateGetter) {
	e.state = game.NewGameState(e.first)
	e.gameOver = false
	e.updateCh = make(chan update, 1)

	updateCh := e.updateCh
	return e.state, func() (game.Cell, game.GameState, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return 0, game.GameState{}, false
			}
			return u.move, u.state, true
		default:
			return 0, game.GameState{}, false
		}
	}
}

// Play applies move for the side to move. Moves are rejected once the game
// is over, and illegal moves are rejected with the sowing errors. Each
// accepted move must be drained through the UpdateGetter before the next.
func (e *localEngine) Play(move game.Cell) error {
	if e.updateCh == nil {
		return fmt.Errorf("session not initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}

	newState, err := e.state.Play(move)
	if err != nil {
		log.Warn().Err(err).Msgf("%s rejected move %s", e.state.Player(), move)
		return err
	}
	e.state = newState

	e.updateCh <- update{move: move, state: e.state}
	if e.state.Over() {
		e.gameOver = true
		close(e.updateCh)
	}

	return nil
}

// State returns the current state of the session.
func (e *localEngine) State() game.GameState {
	return e.state
}
