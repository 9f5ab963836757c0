package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"mancala/game"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := game.NewBoard()
	b[game.Store1] = 12
	b[game.PitG] = 0
	b[game.PitF] = 10

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b))

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "       |   0  |   4  |   4  |   4  |   4  |   4  |", lines[3], "Side 2 pits G..L on top")
	require.Equal(t, "T   0  +------+------+------+------+------+------+  12  T", lines[5], "Store 2 left, store 1 right")
	require.Equal(t, "R      |   4  |   4  |   4  |   4  |   4  |  10  |      R", lines[7], "Side 1 pits A..F at the bottom")
}

func TestAnnounceOutcome(t *testing.T) {
	for outcome, want := range map[game.Outcome]string{
		game.Side1Wins: "Player 1 has won!\n",
		game.Side2Wins: "Player 2 has won!\n",
		game.Tie:       "There is a tie!\n",
		game.NoWinner:  "",
	} {
		var buf bytes.Buffer
		require.NoError(t, AnnounceOutcome(&buf, outcome))
		require.Equal(t, want, buf.String())
	}
}

func TestReadMove(t *testing.T) {
	t.Run("accepts a lower-case pit of the player's side", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(" b \n"), &out)

		pit, err := p.ReadMove(game.Side1, game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, game.PitB, pit)
		require.Contains(t, out.String(), "Player 1, choose move: A-F (or QUIT)")
	})

	t.Run("re-prompts on the other side's pits and empty pits", func(t *testing.T) {
		b := game.NewBoard()
		b[game.PitH] = 0
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("A\nZ\nH\nK\n"), &out)

		pit, err := p.ReadMove(game.Side2, b)

		require.NoError(t, err)
		require.Equal(t, game.PitK, pit)
		require.Equal(t, 2, strings.Count(out.String(), "Please pick a letter on your side of the board."))
		require.Equal(t, 1, strings.Count(out.String(), "Please pick a non-empty pit."))
		require.Equal(t, 4, strings.Count(out.String(), "Player 2, choose move: G-L (or QUIT)"))
	})

	t.Run("QUIT stops the game", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("quit\n"), &out)

		_, err := p.ReadMove(game.Side1, game.NewBoard())

		require.ErrorIs(t, err, ErrQuit)
		require.Contains(t, out.String(), "Thanks for playing!")
	})

	t.Run("end of input is reported", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), io.Discard)

		_, err := p.ReadMove(game.Side1, game.NewBoard())

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestWaitForStart(t *testing.T) {
	t.Run("Enter starts the game and keeps the following input", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("\nc\n"), &out)

		require.NoError(t, p.WaitForStart())
		require.Contains(t, out.String(), "Press Enter to begin...")

		pit, err := p.ReadMove(game.Side1, game.NewBoard())
		require.NoError(t, err)
		require.Equal(t, game.PitC, pit, "The line after Enter should be read as the first move")
	})

	t.Run("end of input is reported", func(t *testing.T) {
		p := NewPrompter(strings.NewReader(""), io.Discard)

		require.ErrorIs(t, p.WaitForStart(), io.ErrUnexpectedEOF)
	})
}
