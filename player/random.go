package player

import (
	"fmt"

	"mancala/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns a player picking uniformly among the legal moves. The
// same seed always produces the same sequence of choices.
func NewRandom(seed uint64) Player {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) FindMove(state game.GameState) (game.Cell, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("%s has no legal move", state.Player())
	}
	return moves[r.rng.Intn(len(moves))], nil
}

func (r *random) Kind() Kind { return RandomKind }
