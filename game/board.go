package game

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"mancala/meta"
	"mancala/utils"
)

var (
	ErrInvalidCell = errors.New("invalid cell")
	ErrIllegalPit  = errors.New("pit does not belong to the acting side")
	ErrEmptyPit    = errors.New("pit is empty")
)

// Cell identifies one of the 14 cells of the board. Cells are numbered in
// sowing ring order: A B C D E F 1 L K J I H G 2.
type Cell int

const (
	PitA Cell = iota
	PitB
	PitC
	PitD
	PitE
	PitF
	Store1
	PitL
	PitK
	PitJ
	PitI
	PitH
	PitG
	Store2

	NumCells = iota
)

// Labels of every cell, indexed by Cell
var cellLabels = []string{"A", "B", "C", "D", "E", "F", "1", "L", "K", "J", "I", "H", "G", "2"}

// Valid reports whether c is one of the 14 board cells.
func (c Cell) Valid() bool {
	return c >= 0 && c < NumCells
}

// Next returns the cell following c in the sowing ring.
func (c Cell) Next() Cell {
	return (c + 1) % NumCells
}

// IsStore reports whether c is one of the two stores.
func (c Cell) IsStore() bool {
	return c == Store1 || c == Store2
}

// Opposite returns the pit facing c on the other side of the board. Stores
// have no opposite.
func (c Cell) Opposite() (Cell, error) {
	if !c.Valid() || c.IsStore() {
		return 0, fmt.Errorf("%w: %d has no opposite pit", ErrInvalidCell, int(c))
	}
	return PitG - c, nil
}

// Owner returns the side owning c.
func (c Cell) Owner() (Side, error) {
	switch {
	case c >= PitA && c <= Store1:
		return Side1, nil
	case c >= PitL && c <= Store2:
		return Side2, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidCell, int(c))
}

func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cell(%d)", int(c))
	}
	return cellLabels[c]
}

// ParseCell converts a label such as "A" or "2" to its cell. Labels are case
// insensitive and surrounding whitespace is ignored.
func ParseCell(label string) (Cell, error) {
	i := utils.FindIndex(cellLabels, strings.ToUpper(strings.TrimSpace(label)))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCell, label)
	}
	return Cell(i), nil
}

// Side is one of the two players.
type Side int

const (
	Side1 Side = iota + 1
	Side2
)

var (
	side1Pits = [meta.PITS_PER_SIDE]Cell{PitA, PitB, PitC, PitD, PitE, PitF}
	side2Pits = [meta.PITS_PER_SIDE]Cell{PitG, PitH, PitI, PitJ, PitK, PitL}
)

// Pits returns the side's pits in canonical left-to-right order.
func (s Side) Pits() [meta.PITS_PER_SIDE]Cell {
	switch s {
	case Side1:
		return side1Pits
	case Side2:
		return side2Pits
	}
	panic(fmt.Sprintf("unexpected side %d", int(s)))
}

// Store returns the side's store.
func (s Side) Store() Cell {
	switch s {
	case Side1:
		return Store1
	case Side2:
		return Store2
	}
	panic(fmt.Sprintf("unexpected side %d", int(s)))
}

// Other returns the opponent of s.
func (s Side) Other() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// Owns reports whether c is one of the side's six pits.
func (s Side) Owns(c Cell) bool {
	for _, pit := range s.Pits() {
		if pit == c {
			return true
		}
	}
	return false
}

func (s Side) Valid() bool {
	return s == Side1 || s == Side2
}

func (s Side) String() string {
	return fmt.Sprintf("Player%d", int(s))
}

// Board holds the seed count of every cell, indexed by Cell. It is a value
// type: assigning a Board copies it.
type Board [NumCells]int

// NewBoard returns a board in the starting state: every pit holds
// meta.STARTING_SEEDS seeds and both stores are empty.
func NewBoard() Board {
	var b Board
	for _, pit := range side1Pits {
		b[pit] = meta.STARTING_SEEDS
	}
	for _, pit := range side2Pits {
		b[pit] = meta.STARTING_SEEDS
	}
	return b
}

// Count returns the number of seeds in c.
func (b Board) Count(c Cell) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCell, int(c))
	}
	return b[c], nil
}

// PitTotal sums the seeds in the side's six pits.
func (b Board) PitTotal(s Side) int {
	total := 0
	for _, pit := range s.Pits() {
		total += b[pit]
	}
	return total
}

// Total sums the seeds in all cells.
func (b Board) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// String converts a board into the compact <store1,store2,A..F,G..L> form.
func (b Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d", b[Store1], b[Store2])
	for _, pit := range side1Pits {
		fmt.Fprintf(&buf, ",%d", b[pit])
	}
	for _, pit := range side2Pits {
		fmt.Fprintf(&buf, ",%d", b[pit])
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}
