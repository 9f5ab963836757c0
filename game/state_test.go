package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStatePlay(t *testing.T) {
	t.Run("playing returns a new state and leaves the receiver untouched", func(t *testing.T) {
		gs := NewGameState(Side1)

		next, err := gs.Play(PitA)

		require.NoError(t, err)
		require.Equal(t, NewBoard(), gs.Board, "Receiver should be untouched")
		require.Equal(t, Side2, next.Player())
		require.Equal(t, 0, next.Board[PitA])
		require.False(t, next.ExtraTurn(gs))
	})

	t.Run("extra turn keeps the same player", func(t *testing.T) {
		gs := NewGameState(Side1)

		next, err := gs.Play(PitC)

		require.NoError(t, err)
		require.Equal(t, Side1, next.Player())
		require.True(t, next.ExtraTurn(gs))
	})

	t.Run("illegal move returns an error and the unchanged state", func(t *testing.T) {
		gs := NewGameState(Side2)

		next, err := gs.Play(PitA)

		require.ErrorIs(t, err, ErrIllegalPit)
		require.Equal(t, gs, next)
	})

	t.Run("emptying a side ends the game", func(t *testing.T) {
		gs := GameState{
			Board: board([6]int{0, 0, 0, 0, 0, 1}, [6]int{2, 0, 0, 0, 0, 0}, 20, 25),
			Turn:  Side1,
		}

		next, err := gs.Play(PitF)

		require.NoError(t, err)
		require.True(t, next.Over())
		require.Equal(t, Side2Wins, next.Winner(), "21 against 25+2")
		require.Equal(t, 27, next.Board[Store2])
		require.Nil(t, next.LegalMoves())
		require.False(t, next.ExtraTurn(gs), "No turn follows the end of the game")

		_, err = next.Play(PitG)
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestGameStateLegalMoves(t *testing.T) {
	gs := GameState{
		Board: board([6]int{0, 3, 0, 1, 0, 0}, [6]int{1, 1, 1, 1, 1, 1}, 0, 0),
		Turn:  Side1,
	}

	require.Equal(t, []Cell{PitB, PitD}, gs.LegalMoves())

	gs.Turn = Side2
	require.Equal(t, []Cell{PitG, PitH, PitI, PitJ, PitK, PitL}, gs.LegalMoves(),
		"Moves should follow the canonical left-to-right order")
}

func TestGameStateHash(t *testing.T) {
	a := NewGameState(Side1)
	b := NewGameState(Side1)
	c := NewGameState(Side2)

	require.Equal(t, a.Hash(), b.Hash(), "Identical states should hash identically")
	require.NotEqual(t, a.Hash(), c.Hash(), "Turn should take part in the hash")

	played, err := a.Play(PitA)
	require.NoError(t, err)
	require.NotEqual(t, a.Hash(), played.Hash())
}

func TestNewGameStatePanicsOnUnknownSide(t *testing.T) {
	require.Panics(t, func() { NewGameState(Side(3)) })
}

func TestGameStateSeedTotal(t *testing.T) {
	gs := NewGameState(Side1)
	require.Equal(t, 48, gs.SeedTotal())

	for _, pit := range []Cell{PitC, PitF} {
		var err error
		gs, err = gs.Play(pit)
		require.NoError(t, err)
		require.Equal(t, 48, gs.SeedTotal(), "Seeds should be conserved after %s", pit)
	}
}
