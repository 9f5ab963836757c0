package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mancala/game"
)

var ErrQuit = errors.New("player quit")

// Prompter asks a human for moves on a line-oriented terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadMove keeps asking until the player names a non-empty pit of side,
// types QUIT (ErrQuit) or the input ends (io.ErrUnexpectedEOF).
func (p *Prompter) ReadMove(side game.Side, b game.Board) (game.Cell, error) {
	pits := side.Pits()
	for {
		fmt.Fprintf(p.out, "%s, choose move: %s-%s (or QUIT)\n> ", sideLabel(side), pits[0], pits[len(pits)-1])

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("reading move: %w", err)
			}
			return 0, fmt.Errorf("reading move: %w", io.ErrUnexpectedEOF)
		}
		response := strings.ToUpper(strings.TrimSpace(p.in.Text()))

		if response == "QUIT" {
			fmt.Fprintln(p.out, "Thanks for playing!")
			return 0, ErrQuit
		}

		pit, err := game.ParseCell(response)
		if err != nil || !side.Owns(pit) {
			fmt.Fprintln(p.out, "Please pick a letter on your side of the board.")
			continue
		}
		if b[pit] == 0 {
			fmt.Fprintln(p.out, "Please pick a non-empty pit.")
			continue
		}
		return pit, nil
	}
}

// WaitForStart pauses until the player presses Enter.
func (p *Prompter) WaitForStart() error {
	fmt.Fprint(p.out, "Press Enter to begin...")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return fmt.Errorf("waiting for start: %w", err)
		}
		return fmt.Errorf("waiting for start: %w", io.ErrUnexpectedEOF)
	}
	fmt.Fprintln(p.out)
	return nil
}

func sideLabel(s game.Side) string {
	return fmt.Sprintf("Player %d", int(s))
}
