package engine

import (
	"errors"
	"io"
	"strings"
	"testing"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/player"
	"mancala/ui"

	"github.com/stretchr/testify/require"
)

var errScriptDone = errors.New("script done")

type scripted struct {
	moves []game.Cell
}

func (s *scripted) FindMove(game.GameState) (game.Cell, error) {
	if len(s.moves) == 0 {
		return 0, errScriptDone
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func (s *scripted) Kind() player.Kind { return "scripted" }

func TestRun_ScriptedGame(t *testing.T) {
	players := [2]player.Player{
		&scripted{moves: []game.Cell{game.PitC, game.PitF}},
		&scripted{moves: []game.Cell{game.PitJ}},
	}
	var observed []game.Cell
	e := LocalEngine(players, WithObserver(func(move game.Cell, state game.GameState) {
		observed = append(observed, move)
	}))

	result, err := e.Run()

	require.ErrorIs(t, err, errScriptDone, "Side 1 runs out of moves after J lands on A")
	require.Equal(t, []game.Cell{game.PitC, game.PitF, game.PitJ}, observed)
	require.Len(t, result.Moves, 3)

	require.True(t, result.Moves[0].ExtraTurn, "C ends in store 1")
	require.Equal(t, game.Side1, result.Moves[1].Side, "Extra turn asks side 1 again")
	require.False(t, result.Moves[1].ExtraTurn)
	require.Equal(t, game.Side2, result.Moves[2].Side)
	require.Equal(t, "scripted", result.Moves[2].Kind)

	require.Equal(t, game.Side1, result.State.Player())
	require.Equal(t, 2, result.State.Board[game.Store1])
	require.Equal(t, 1, result.State.Board[game.Store2])
	require.Equal(t, result.State.Hash(), result.Moves[2].Hash)
	require.Equal(t, game.NoWinner, result.Outcome)
	require.Equal(t, 3, result.Game.TotalMoves)
}

func TestRun_IllegalMove(t *testing.T) {
	players := [2]player.Player{
		&scripted{moves: []game.Cell{game.PitG}},
		&scripted{},
	}

	result, err := LocalEngine(players).Run()

	require.ErrorIs(t, err, game.ErrIllegalPit)
	require.Empty(t, result.Moves)
	require.Equal(t, game.NewBoard(), result.State.Board)
}

func TestRun_HumanQuits(t *testing.T) {
	human := player.NewHuman(ui.NewPrompter(strings.NewReader("quit\n"), io.Discard))
	players := [2]player.Player{human, player.NewComputer()}

	_, err := LocalEngine(players).Run()

	require.ErrorIs(t, err, ui.ErrQuit)
}

func TestRun_ComputerAgainstRandom(t *testing.T) {
	for _, first := range []game.Side{game.Side1, game.Side2} {
		t.Run("game finishes with seeds conserved starting with "+first.String(), func(t *testing.T) {
			collector := metrics.NewCollector()
			players := [2]player.Player{
				player.NewComputer(player.WithCollector(collector)),
				player.NewRandom(42),
			}

			result, err := LocalEngine(players, WithFirst(first), WithCollector(collector)).Run()

			require.NoError(t, err)
			require.True(t, result.Outcome.Over(), "Game should end well before the turn limit")
			require.Equal(t, 48, result.State.SeedTotal())
			require.Zero(t, result.State.Board.PitTotal(game.Side1)+result.State.Board.PitTotal(game.Side2),
				"All seeds should be in the stores at the end")
			require.Equal(t, first, result.Moves[0].Side)
			require.Equal(t, first, result.Game.StartingSide)
			require.Equal(t, result.State.Board[game.Store1], result.Game.Store1)

			for _, m := range result.Moves {
				if m.Side == game.Side1 {
					require.Positive(t, m.Candidates, "Computer moves should count scored candidates")
				} else {
					require.Zero(t, m.Candidates)
				}
			}
		})
	}
}

func TestRun_MaxTurns(t *testing.T) {
	players := [2]player.Player{player.NewRandom(1), player.NewRandom(2)}

	result, err := LocalEngine(players, WithMaxTurns(2)).Run()

	require.NoError(t, err)
	require.Len(t, result.Moves, 2)
	require.False(t, result.Outcome.Over())
}

func TestLocalEngine_MissingPlayer(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine([2]player.Player{player.NewComputer(), nil})
	})
}

func TestRun_WithoutTurnLimit(t *testing.T) {
	players := [2]player.Player{player.NewRandom(5), player.NewRandom(6)}

	e := LocalEngine(players, WithMaxTurns(2), WithoutTurnLimit())
	result, err := e.Run()

	require.NoError(t, err)
	require.Zero(t, e.maxTurns)
	require.True(t, result.Outcome.Over(), "Game should only stop once it is decided")
	require.Greater(t, len(result.Moves), 2)
}
