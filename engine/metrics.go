package engine

import (
	"mancala/game"
	"sync"
	"time"
)

type MoveMetric struct {
	Step      int
	Player    game.Player
	Action    game.Action
	ExtraTurn bool // Mover plays again after this action
	Hash      game.StateHash
	Duration  time.Duration // Time the agent took to choose
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // PlayerNone on a draw or when truncated
	Returns        []float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	ExtraTurns     int
	Truncated      bool // Stopped by the move cap before a terminal state
}

type Collector interface {
	Start(startingPlayer game.Player)
	AddMove(move MoveMetric)
	Complete(winner game.Player, returns []float64, truncated bool) (GameMetric, []MoveMetric)
}

type collector struct {
	sync.Mutex
	startingPlayer game.Player
	startTime      time.Time
	moves          []MoveMetric
	extraTurns     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer game.Player) {
	c.Lock()
	defer c.Unlock()

	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.moves = nil
	c.extraTurns = 0
}

func (c *collector) AddMove(move MoveMetric) {
	c.Lock()
	defer c.Unlock()

	c.moves = append(c.moves, move)
	if move.ExtraTurn {
		c.extraTurns++
	}
}

func (c *collector) Complete(winner game.Player, returns []float64, truncated bool) (GameMetric, []MoveMetric) {
	c.Lock()
	defer c.Unlock()

	end := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		Returns:        returns,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
		ExtraTurns:     c.extraTurns,
		Truncated:      truncated,
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer game.Player) {}
func (c *dummyCollector) AddMove(move MoveMetric)          {}
func (c *dummyCollector) Complete(winner game.Player, returns []float64, truncated bool) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
