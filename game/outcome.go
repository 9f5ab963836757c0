package game

// Outcome is the result of inspecting a board for the end of the game.
type Outcome int

const (
	NoWinner Outcome = iota
	Side1Wins
	Side2Wins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case NoWinner:
		return "no winner"
	case Side1Wins:
		return "Player1 wins"
	case Side2Wins:
		return "Player2 wins"
	case Tie:
		return "tie"
	}
	return "unknown outcome"
}

// Over reports whether o is a terminal outcome.
func (o Outcome) Over() bool {
	return o != NoWinner
}

// CheckOutcome reports whether the game on b has ended. When one side's pits
// are all empty, the other side's remaining pit seeds are swept into that
// other side's store before the stores are compared. Boards where both sides
// still have seeds are left untouched.
func CheckOutcome(b *Board) Outcome {
	switch {
	case b.PitTotal(Side1) == 0:
		collect(b, Side2)
	case b.PitTotal(Side2) == 0:
		collect(b, Side1)
	default:
		return NoWinner
	}

	switch {
	case b[Store1] > b[Store2]:
		return Side1Wins
	case b[Store2] > b[Store1]:
		return Side2Wins
	default:
		return Tie
	}
}

// Move all seeds left in the side's pits to its store
func collect(b *Board, s Side) {
	for _, pit := range s.Pits() {
		b[s.Store()] += b[pit]
		b[pit] = 0
	}
}
