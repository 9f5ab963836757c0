package player

import (
	"mancala/advisor"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/ui"

	"github.com/rs/zerolog/log"
)

type Kind string

const (
	HumanKind    Kind = "human"
	ComputerKind Kind = "computer"
	RandomKind   Kind = "random"
)

// Player supplies moves for whichever side is to move in state.
type Player interface {
	FindMove(state game.GameState) (game.Cell, error)
	Kind() Kind
}

type human struct {
	prompter *ui.Prompter
}

// NewHuman returns a player reading moves from prompter.
func NewHuman(prompter *ui.Prompter) Player {
	return human{prompter: prompter}
}

func (h human) FindMove(state game.GameState) (game.Cell, error) {
	return h.prompter.ReadMove(state.Player(), state.Board)
}

func (h human) Kind() Kind { return HumanKind }

type Option func(c *computer)

// WithCollector counts every candidate the advisor scores into collector.
func WithCollector(collector metrics.Collector) Option {
	return func(c *computer) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

type computer struct {
	metrics metrics.Collector
}

// NewComputer returns a player following the advisor's recommendation.
func NewComputer(options ...Option) Player {
	c := &computer{metrics: metrics.NewDummyCollector()}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *computer) FindMove(state game.GameState) (game.Cell, error) {
	scores, err := advisor.Evaluate(state.Board, state.Player())
	if err != nil {
		return 0, err
	}
	best, err := scores.Best()
	if err != nil {
		return 0, err
	}

	for _, s := range scores {
		c.metrics.AddCandidate()
		log.Debug().
			Stringer("pit", s.Pit).
			Int("score", s.Score).
			Bool("extra_turn", s.ExtraTurn).
			Bool("blocked", s.Blocked).
			Int("reply_gain", s.ReplyGain).
			Msg("advisor candidate")
	}
	log.Info().Msgf("%s chose %s (score %d)", state.Player(), best.Pit, best.Score)

	return best.Pit, nil
}

func (c *computer) Kind() Kind { return ComputerKind }
