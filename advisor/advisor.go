// Package advisor picks a move for the computer-controlled side by looking
// one move ahead and simulating the opponent's strongest single reply.
package advisor

import (
	"errors"
	"fmt"

	"mancala/game"
)

// Heuristic weights
const (
	BlockedBonus   = 5 // Every pit of the side moving next is empty
	ExtraTurnBonus = 3 // Last seed landed in the acting side's store
)

var ErrNoLegalMove = errors.New("no legal move")

// Candidate is the evaluation of one first move.
type Candidate struct {
	Pit       game.Cell
	Score     int
	NextTurn  game.Side // Side to move after the first sow
	ExtraTurn bool
	Blocked   bool // Every pit of NextTurn is empty after the first sow
	// Largest single-move store increase available to the opponent after the
	// first sow, -1 when there is no reply to simulate. It does not take
	// part in Score.
	ReplyGain int
}

// Scoreboard lists candidates in the acting side's canonical pit order.
type Scoreboard []Candidate

// Best returns the candidate with the strictly highest score, the earliest
// one on ties.
func (s Scoreboard) Best() (Candidate, error) {
	if len(s) == 0 {
		return Candidate{}, ErrNoLegalMove
	}
	best := s[0]
	for _, c := range s[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, nil
}

// ChooseMove returns the pit the advisor recommends for side on b. It is
// deterministic and never modifies b.
func ChooseMove(b game.Board, side game.Side) (game.Cell, error) {
	scores, err := Evaluate(b, side)
	if err != nil {
		return 0, err
	}
	best, err := scores.Best()
	if err != nil {
		return 0, err
	}
	return best.Pit, nil
}

// Evaluate scores every non-empty pit of side on b.
func Evaluate(b game.Board, side game.Side) (Scoreboard, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("unexpected side %d", int(side))
	}
	var scores Scoreboard
	for _, pit := range side.Pits() {
		if b[pit] == 0 {
			continue
		}
		c, err := evaluateMove(b, side, pit)
		if err != nil {
			return nil, err
		}
		scores = append(scores, c)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: every pit of %s is empty", ErrNoLegalMove, side)
	}
	return scores, nil
}

func evaluateMove(b game.Board, side game.Side, pit game.Cell) (Candidate, error) {
	after := b
	next, err := game.Sow(&after, side, pit)
	if err != nil {
		return Candidate{}, err
	}

	c := Candidate{
		Pit:       pit,
		NextTurn:  next,
		ExtraTurn: next == side,
		Blocked:   after.PitTotal(next) == 0,
		ReplyGain: -1,
	}
	if !c.ExtraTurn {
		c.ReplyGain = bestReplyGain(after, next)
	}

	c.Score = after[side.Store()] - after[next.Store()]
	if c.Blocked {
		c.Score += BlockedBonus
	}
	if c.ExtraTurn {
		c.Score += ExtraTurnBonus
	}
	return c, nil
}

// bestReplyGain returns the largest increase of side's store any single move
// of side can produce on b, or -1 if side has no move.
func bestReplyGain(b game.Board, side game.Side) int {
	best := -1
	before := b[side.Store()]
	for _, pit := range side.Pits() {
		if b[pit] == 0 {
			continue
		}
		reply := b
		if _, err := game.Sow(&reply, side, pit); err != nil {
			continue
		}
		if gain := reply[side.Store()] - before; gain > best {
			best = gain
		}
	}
	return best
}
