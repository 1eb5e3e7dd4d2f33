package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Episodes     int // MCTS iterations
	Nodes        int // minimax positions visited
	Cutoffs      int // alpha-beta prunes
	IsTreeReused bool
}

type MoveMetric struct {
	Step   int
	Player int // game.Piece
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // game.Piece
	Winner         int // game.Piece, 0 for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	SetTreeReused(value bool)
	AddEpisode()
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	episodes     atomic.Int64
	nodes        atomic.Int64
	cutoffs      atomic.Int64
	isTreeReused atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.isTreeReused.Store(false)
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused.Store(value)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Nodes:        int(m.nodes.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		IsTreeReused: m.isTreeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                   {}
func (m *dummyCollector) SetTreeReused(value bool) {}
func (m *dummyCollector) AddEpisode()              {}
func (m *dummyCollector) AddNode()                 {}
func (m *dummyCollector) AddCutoff()               {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
