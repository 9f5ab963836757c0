// meta/meta.go
package meta

// STARTING_SEEDS defines the number of seeds placed in every pit of a new board.
const STARTING_SEEDS = 4

// PITS_PER_SIDE defines how many pits each side owns.
const PITS_PER_SIDE = 6

// MAX_TURNS caps the number of moves the local engine plays before giving up.
const MAX_TURNS = 300

// GAMES defines the default number of games per experiment.
const GAMES = 50
