package game

import "fmt"

// Sow empties pit and distributes its seeds one by one into the following
// cells of the ring, skipping the opponent's store. It mutates b in place and
// returns the side that moves next.
//
// A last seed landing in the acting side's store grants an extra turn. A last
// seed landing in a previously empty pit of the acting side captures the
// opposite pit's seeds into the acting side's store. The landing seed stays.
func Sow(b *Board, side Side, pit Cell) (Side, error) {
	if !pit.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCell, int(pit))
	}
	if !side.Owns(pit) {
		return 0, fmt.Errorf("%w: %s cannot sow %s", ErrIllegalPit, side, pit)
	}
	seeds := b[pit]
	if seeds == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyPit, pit)
	}
	b[pit] = 0

	skip := side.Other().Store()
	cursor := pit
	for seeds > 0 {
		cursor = cursor.Next()
		if cursor == skip {
			continue
		}
		b[cursor]++
		seeds--
	}

	if cursor == side.Store() {
		return side, nil
	}

	if side.Owns(cursor) && b[cursor] == 1 {
		opposite, _ := cursor.Opposite()
		b[side.Store()] += b[opposite]
		b[opposite] = 0
	}

	return side.Other(), nil
}
