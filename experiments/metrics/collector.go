package metrics

import (
	"sync/atomic"
	"time"

	"mancala/game"
)

type MoveMetric struct {
	Step       int
	Side       game.Side
	Kind       string // Player kind
	Pit        game.Cell
	ExtraTurn  bool
	Candidates int
	Duration   time.Duration
	Hash       game.StateHash
}

type GameMetric struct {
	StartingSide game.Side
	Outcome      game.Outcome
	Store1       int
	Store2       int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector times a single move decision.
type Collector interface {
	Start()
	AddCandidate()
	Complete(step int, side game.Side, kind string) MoveMetric
}

type collector struct {
	startTime  time.Time
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.candidates.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) Complete(step int, side game.Side, kind string) MoveMetric {
	return MoveMetric{
		Step:       step,
		Side:       side,
		Kind:       kind,
		Candidates: int(m.candidates.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()        {}
func (m *dummyCollector) AddCandidate() {}
func (m *dummyCollector) Complete(step int, side game.Side, kind string) MoveMetric {
	return MoveMetric{Step: step, Side: side, Kind: kind}
}
