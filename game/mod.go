// Package game implements the Kalah variant of Mancala: the 14-cell board,
// sowing with captures and extra turns, and end-of-game detection.
package game

type StateHash uint64

// GameState is immutable - Play always returns a new copy
type GameState struct {
	Board   Board
	Turn    Side    // The side to move next
	Outcome Outcome // NoWinner while the game is in progress
}
