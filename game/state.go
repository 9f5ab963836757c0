package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

var ErrGameOver = errors.New("game is over")

// NewGameState returns the starting position with first to move.
func NewGameState(first Side) GameState {
	if !first.Valid() {
		panic(fmt.Sprintf("unexpected side %d", int(first)))
	}
	return GameState{
		Board:   NewBoard(),
		Turn:    first,
		Outcome: NoWinner,
	}
}

// Player returns the side to move.
func (gs GameState) Player() Side {
	return gs.Turn
}

// LegalMoves returns the non-empty pits of the side to move in canonical
// order, or nil once the game is over.
func (gs GameState) LegalMoves() []Cell {
	if gs.Over() {
		return nil
	}
	var moves []Cell
	for _, pit := range gs.Turn.Pits() {
		if gs.Board[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// Play sows pit for the side to move and checks for the end of the game.
// The receiver is left untouched.
func (gs GameState) Play(pit Cell) (GameState, error) {
	if gs.Over() {
		return gs, fmt.Errorf("%w: %s", ErrGameOver, gs.Outcome)
	}
	next := gs
	turn, err := Sow(&next.Board, gs.Turn, pit)
	if err != nil {
		return gs, err
	}
	next.Turn = turn
	next.Outcome = CheckOutcome(&next.Board)
	return next, nil
}

// ExtraTurn reports whether moving from prev to gs kept the same side to move.
func (gs GameState) ExtraTurn(prev GameState) bool {
	return !gs.Over() && gs.Turn == prev.Turn
}

func (gs GameState) Over() bool {
	return gs.Outcome.Over()
}

// Winner returns the outcome of the game, NoWinner while it is in progress.
func (gs GameState) Winner() Outcome {
	return gs.Outcome
}

// SeedTotal returns the number of seeds on the board, constant during a game.
func (gs GameState) SeedTotal() int {
	return gs.Board.Total()
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	for _, count := range gs.Board {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}

	return StateHash(hasher.Sum64())
}

func (gs GameState) String() string {
	return fmt.Sprintf("%s to move %s", gs.Turn, gs.Board)
}
