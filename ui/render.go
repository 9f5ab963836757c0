// Package ui is the text presentation of a game: the ASCII board, the move
// prompt and end-of-game messages.
package ui

import (
	"fmt"
	"io"

	"mancala/game"
)

const boardArt = `
+------+------+--<<<<<-Player 2----+------+------+------+
2      |G     |H     |I     |J     |K     |L     |      1
       |  %2d  |  %2d  |  %2d  |  %2d  |  %2d  |  %2d  |
S      |      |      |      |      |      |      |      S
T  %2d  +------+------+------+------+------+------+  %2d  T
O      |A     |B     |C     |D     |E     |F     |      O
R      |  %2d  |  %2d  |  %2d  |  %2d  |  %2d  |  %2d  |      R
E      |      |      |      |      |      |      |      E
+------+------+------+-Player 1->>>>>-----+------+------+

`

// Order in which cell counts fill the board art
var renderOrder = []game.Cell{
	game.PitG, game.PitH, game.PitI, game.PitJ, game.PitK, game.PitL,
	game.Store2, game.Store1,
	game.PitA, game.PitB, game.PitC, game.PitD, game.PitE, game.PitF,
}

// Render draws b as ASCII art with side 2 on top.
func Render(w io.Writer, b game.Board) error {
	counts := make([]any, len(renderOrder))
	for i, c := range renderOrder {
		counts[i] = b[c]
	}
	_, err := fmt.Fprintf(w, boardArt, counts...)
	return err
}

func Banner(w io.Writer) error {
	_, err := fmt.Fprint(w, "======== Mancala Game ========\n\n\n")
	return err
}

// AnnounceOutcome prints the end-of-game message for o. Nothing is printed
// while the game is in progress.
func AnnounceOutcome(w io.Writer, o game.Outcome) error {
	var err error
	switch o {
	case game.Side1Wins:
		_, err = fmt.Fprintln(w, "Player 1 has won!")
	case game.Side2Wins:
		_, err = fmt.Fprintln(w, "Player 2 has won!")
	case game.Tie:
		_, err = fmt.Fprintln(w, "There is a tie!")
	}
	return err
}
